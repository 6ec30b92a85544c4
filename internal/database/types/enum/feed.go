package enum

// FeedType identifies the kind of event a feed entry records. The numeric
// values are part of the wire contract and must not be renumbered.
type FeedType int

const (
	// FeedTypeChallengeCompleted records that the owning user finished a daily challenge.
	FeedTypeChallengeCompleted FeedType = 1
	// FeedTypeDailyTip announces a tip of the day.
	FeedTypeDailyTip FeedType = 2
	// FeedTypePeerLevelUp records that a colleague reached a new level.
	FeedTypePeerLevelUp FeedType = 3
	// FeedTypePeerQuizCompleted records that a colleague completed a quiz.
	FeedTypePeerQuizCompleted FeedType = 4
	// FeedTypeNewContent announces a newly published article or culture item.
	FeedTypeNewContent FeedType = 5
	// FeedTypeRankingUpdated announces a refreshed group ranking. Carries no content reference.
	FeedTypeRankingUpdated FeedType = 6
	// FeedTypeNewVideo announces a newly posted video.
	FeedTypeNewVideo FeedType = 7
	// FeedTypeNewMedia announces a newly posted media item.
	FeedTypeNewMedia FeedType = 8
	// FeedTypeEvaluationReminder nudges evaluators to submit evaluations. Carries no content reference.
	FeedTypeEvaluationReminder FeedType = 9
)

// FeedTypeCount is the number of defined feed types. Dispatch tables are
// sized with it so a new type without a renderer fails to compile.
const FeedTypeCount = 9

func (t FeedType) String() string {
	switch t {
	case FeedTypeChallengeCompleted:
		return "ChallengeCompleted"
	case FeedTypeDailyTip:
		return "DailyTip"
	case FeedTypePeerLevelUp:
		return "PeerLevelUp"
	case FeedTypePeerQuizCompleted:
		return "PeerQuizCompleted"
	case FeedTypeNewContent:
		return "NewContent"
	case FeedTypeRankingUpdated:
		return "RankingUpdated"
	case FeedTypeNewVideo:
		return "NewVideo"
	case FeedTypeNewMedia:
		return "NewMedia"
	case FeedTypeEvaluationReminder:
		return "EvaluationReminder"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the defined feed types.
func (t FeedType) Valid() bool {
	return t >= FeedTypeChallengeCompleted && t <= FeedTypeEvaluationReminder
}

// RefType identifies which external model a feed entry points at.
// Numeric values are part of the wire contract.
type RefType int

const (
	RefTypeUnknown RefType = 0
	RefTypeArticle RefType = 1
	RefTypeCulture RefType = 2
	RefTypeUser    RefType = 3
	RefTypeVideo   RefType = 4
	RefTypeMedia   RefType = 5

	// RefTypeEvaluationReminder is what clients historically receive for
	// evaluation reminders. It shares the Media wire value; existing
	// clients depend on the 5, so it stays a named alias rather than a
	// distinct value.
	RefTypeEvaluationReminder = RefTypeMedia
)

func (t RefType) String() string {
	switch t {
	case RefTypeArticle:
		return "Article"
	case RefTypeCulture:
		return "Culture"
	case RefTypeUser:
		return "User"
	case RefTypeVideo:
		return "Video"
	case RefTypeMedia:
		return "Media"
	default:
		return "Unknown"
	}
}

// Category narrows a feed query to one slice of the timeline.
type Category string

const (
	CategoryNone      Category = ""
	CategoryUnread    Category = "unread"
	CategoryBrand     Category = "brand"
	CategoryMarket    Category = "market"
	CategoryCommunity Category = "community"
)

// Known reports whether the category is one the classifier acts on.
// Unrecognized values are kept as-is and treated as "no additional
// filter" instead of being rejected.
func (c Category) Known() bool {
	switch c {
	case CategoryUnread, CategoryBrand, CategoryMarket, CategoryCommunity:
		return true
	default:
		return false
	}
}
