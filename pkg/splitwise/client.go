package splitwise

import (
	"context"
	"net/http"
	"time"
)

// Client provides typed access to the Splitwise API.
type Client interface {
	Users() UsersClient
	Groups() GroupsClient
	Expenses() ExpensesClient
	Friends() FriendsClient
	Comments() CommentsClient
	Notifications() NotificationsClient
	Currencies() CurrenciesClient
	Categories() CategoriesClient

	// ClearCache drains the response cache. Calls already past their
	// deduplication slot are unaffected.
	ClearCache()

	// Close stops background cache maintenance. Safe to call repeatedly.
	Close()
}

// UsersClient accesses user resources.
type UsersClient interface {
	GetCurrent(ctx context.Context) (*User, error)
	Get(ctx context.Context, userID int64) (*User, error)
	Update(ctx context.Context, userID int64, request *UserUpdateRequest) (*User, error)
}

// GroupsClient accesses group resources.
type GroupsClient interface {
	List(ctx context.Context) ([]Group, error)
	Get(ctx context.Context, groupID int64) (*Group, error)
	Create(ctx context.Context, request *GroupCreateRequest) (*Group, error)
	Delete(ctx context.Context, groupID int64) error
	Restore(ctx context.Context, groupID int64) error
	AddUser(ctx context.Context, request *GroupAddUserRequest) error
	RemoveUser(ctx context.Context, groupID, userID int64) error
}

// ExpensesClient accesses expense resources.
type ExpensesClient interface {
	List(ctx context.Context, opts *ExpenseListOptions) ([]Expense, error)
	Get(ctx context.Context, expenseID int64) (*Expense, error)
	Create(ctx context.Context, request *ExpenseCreateRequest) ([]Expense, error)
	Update(ctx context.Context, expenseID int64, request *ExpenseUpdateRequest) ([]Expense, error)
	Delete(ctx context.Context, expenseID int64) error
	Restore(ctx context.Context, expenseID int64) error
}

// FriendsClient accesses friend resources.
type FriendsClient interface {
	List(ctx context.Context) ([]Friend, error)
	Get(ctx context.Context, friendID int64) (*Friend, error)
	Add(ctx context.Context, request *FriendCreateRequest) (*Friend, error)
	Delete(ctx context.Context, friendID int64) error
}

// CommentsClient accesses expense comments.
type CommentsClient interface {
	List(ctx context.Context, expenseID int64) ([]Comment, error)
	Create(ctx context.Context, request *CommentCreateRequest) (*Comment, error)
}

// NotificationsClient accesses the notification feed.
type NotificationsClient interface {
	List(ctx context.Context, opts *NotificationListOptions) ([]Notification, error)
}

// CurrenciesClient accesses supported currencies.
type CurrenciesClient interface {
	List(ctx context.Context) ([]Currency, error)
}

// CategoriesClient accesses expense categories.
type CategoriesClient interface {
	List(ctx context.Context) ([]Category, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// RetryConfig tunes the pipeline's retry loop.
//
// When Config.Retry is nil the defaults apply (3 retries, 500ms base delay,
// 30s cap). When set, MaxRetries is taken literally, so zero disables
// retrying; zero delays fall back to the defaults.
type RetryConfig struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int

	// BaseDelay seeds the full-jitter exponential backoff: attempt n waits a
	// uniform random duration in [0, min(BaseDelay * 2^n, MaxDelay)].
	BaseDelay time.Duration

	// MaxDelay caps every wait, including server-supplied rate-limit hints.
	MaxDelay time.Duration
}

// Config represents client configuration for building a splitwise.Client.
//
// # Authentication
//
// Provide either AccessToken (a literal API key used as a static Bearer
// token) or TokenProvider (resolved freshly on every request attempt, so
// rotating credentials are picked up across retries). TokenProvider takes
// precedence when both are set. With neither, every call fails with an
// authentication-kind error.
type Config struct {
	// AccessToken is a literal API key.
	AccessToken string

	// TokenProvider yields the API key per request attempt.
	TokenProvider func(ctx context.Context) (string, error)

	// BaseURL overrides the default Splitwise API root. swclient.New trims a
	// trailing slash and adds "https://" if no scheme is present.
	BaseURL string

	// Logger receives structured pipeline events. Nil disables logging.
	Logger Logger

	// Debug enables per-attempt request/response logging on the Logger.
	Debug bool

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// HTTPClient overrides the underlying transport. The transport owns
	// connection and response timeouts; timeouts surface to the pipeline as
	// network-kind errors.
	HTTPClient *http.Client

	// Retry overrides the retry defaults.
	Retry *RetryConfig

	// Cache overrides the response cache defaults.
	Cache *CacheConfig

	// Metrics receives request, retry, cache and deduplication counters.
	// Nil disables metrics collection.
	Metrics *MetricsCollector
}
