package splitwise

import "time"

// Picture holds the avatar URLs attached to users and groups.
type Picture struct {
	Small  string `json:"small,omitempty"  yaml:"small,omitempty"`
	Medium string `json:"medium,omitempty" yaml:"medium,omitempty"`
	Large  string `json:"large,omitempty"  yaml:"large,omitempty"`
}

// Balance is an outstanding amount in one currency.
type Balance struct {
	CurrencyCode string `json:"currency_code" yaml:"currency_code"`
	Amount       string `json:"amount"        yaml:"amount"`
}

// User represents a Splitwise account.
type User struct {
	ID                 int64    `json:"id"                            yaml:"id"`
	FirstName          string   `json:"first_name"                    yaml:"first_name"`
	LastName           string   `json:"last_name"                     yaml:"last_name"`
	Email              string   `json:"email,omitempty"               yaml:"email,omitempty"`
	RegistrationStatus string   `json:"registration_status,omitempty" yaml:"registration_status,omitempty"`
	Picture            *Picture `json:"picture,omitempty"             yaml:"picture,omitempty"`
	DefaultCurrency    string   `json:"default_currency,omitempty"    yaml:"default_currency,omitempty"`
	Locale             string   `json:"locale,omitempty"              yaml:"locale,omitempty"`
}

// UserUpdateRequest carries the mutable fields of a user profile.
type UserUpdateRequest struct {
	FirstName       string `json:"first_name,omitempty"       yaml:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"        yaml:"last_name,omitempty"`
	Email           string `json:"email,omitempty"            yaml:"email,omitempty"`
	Password        string `json:"password,omitempty"         yaml:"password,omitempty"`
	Locale          string `json:"locale,omitempty"           yaml:"locale,omitempty"`
	DefaultCurrency string `json:"default_currency,omitempty" yaml:"default_currency,omitempty"`
}

// GroupMember is a user within a group along with their balances.
type GroupMember struct {
	User    `yaml:",inline"`
	Balance []Balance `json:"balance,omitempty" yaml:"balance,omitempty"`
}

// Debt is a directed amount owed between two group members.
type Debt struct {
	From         int64  `json:"from"          yaml:"from"`
	To           int64  `json:"to"            yaml:"to"`
	Amount       string `json:"amount"        yaml:"amount"`
	CurrencyCode string `json:"currency_code" yaml:"currency_code"`
}

// Group represents a Splitwise group.
type Group struct {
	ID                int64         `json:"id"                           yaml:"id"`
	Name              string        `json:"name"                        yaml:"name"`
	GroupType         string        `json:"group_type,omitempty"         yaml:"group_type,omitempty"`
	UpdatedAt         time.Time     `json:"updated_at"                  yaml:"updated_at"`
	SimplifyByDefault bool          `json:"simplify_by_default"         yaml:"simplify_by_default"`
	Members           []GroupMember `json:"members,omitempty"            yaml:"members,omitempty"`
	OriginalDebts     []Debt        `json:"original_debts,omitempty"     yaml:"original_debts,omitempty"`
	SimplifiedDebts   []Debt        `json:"simplified_debts,omitempty"   yaml:"simplified_debts,omitempty"`
	Whiteboard        string        `json:"whiteboard,omitempty"         yaml:"whiteboard,omitempty"`
	InviteLink        string        `json:"invite_link,omitempty"        yaml:"invite_link,omitempty"`
	Avatar            *Picture      `json:"avatar,omitempty"             yaml:"avatar,omitempty"`
}

// GroupUserShare names an initial member when creating a group.
type GroupUserShare struct {
	UserID    int64  `json:"user_id,omitempty"    yaml:"user_id,omitempty"`
	FirstName string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"  yaml:"last_name,omitempty"`
	Email     string `json:"email,omitempty"      yaml:"email,omitempty"`
}

// GroupCreateRequest carries the fields for creating a group.
type GroupCreateRequest struct {
	Name              string           `json:"name"                          yaml:"name"`
	GroupType         string           `json:"group_type,omitempty"          yaml:"group_type,omitempty"`
	SimplifyByDefault bool             `json:"simplify_by_default,omitempty" yaml:"simplify_by_default,omitempty"`
	Users             []GroupUserShare `json:"users,omitempty"               yaml:"users,omitempty"`
}

// GroupAddUserRequest adds a member to a group, by id or by contact details.
type GroupAddUserRequest struct {
	GroupID   int64  `json:"group_id"             yaml:"group_id"`
	UserID    int64  `json:"user_id,omitempty"    yaml:"user_id,omitempty"`
	FirstName string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"  yaml:"last_name,omitempty"`
	Email     string `json:"email,omitempty"      yaml:"email,omitempty"`
}

// ExpenseUser is one participant's share of an expense.
type ExpenseUser struct {
	User       *User  `json:"user,omitempty"        yaml:"user,omitempty"`
	UserID     int64  `json:"user_id,omitempty"     yaml:"user_id,omitempty"`
	PaidShare  string `json:"paid_share,omitempty"  yaml:"paid_share,omitempty"`
	OwedShare  string `json:"owed_share,omitempty"  yaml:"owed_share,omitempty"`
	NetBalance string `json:"net_balance,omitempty" yaml:"net_balance,omitempty"`
}

// Receipt holds receipt image URLs attached to an expense.
type Receipt struct {
	Large    string `json:"large,omitempty"    yaml:"large,omitempty"`
	Original string `json:"original,omitempty" yaml:"original,omitempty"`
}

// Category classifies expenses. Top-level categories carry subcategories.
type Category struct {
	ID            int64      `json:"id"                      yaml:"id"`
	Name          string     `json:"name"                    yaml:"name"`
	Subcategories []Category `json:"subcategories,omitempty" yaml:"subcategories,omitempty"`
}

// Expense represents a Splitwise expense.
type Expense struct {
	ID             int64         `json:"id"                        yaml:"id"`
	GroupID        *int64        `json:"group_id"                  yaml:"group_id"`
	Description    string        `json:"description"               yaml:"description"`
	Payment        bool          `json:"payment"                   yaml:"payment"`
	Cost           string        `json:"cost"                      yaml:"cost"`
	CurrencyCode   string        `json:"currency_code"             yaml:"currency_code"`
	Date           time.Time     `json:"date"                      yaml:"date"`
	CreatedAt      time.Time     `json:"created_at"                yaml:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"                yaml:"updated_at"`
	DeletedAt      *time.Time    `json:"deleted_at,omitempty"      yaml:"deleted_at,omitempty"`
	Details        string        `json:"details,omitempty"         yaml:"details,omitempty"`
	Category       *Category     `json:"category,omitempty"        yaml:"category,omitempty"`
	Receipt        *Receipt      `json:"receipt,omitempty"         yaml:"receipt,omitempty"`
	CreatedBy      *User         `json:"created_by,omitempty"      yaml:"created_by,omitempty"`
	UpdatedBy      *User         `json:"updated_by,omitempty"      yaml:"updated_by,omitempty"`
	DeletedBy      *User         `json:"deleted_by,omitempty"      yaml:"deleted_by,omitempty"`
	Repeats        bool          `json:"repeats"                   yaml:"repeats"`
	RepeatInterval string        `json:"repeat_interval,omitempty" yaml:"repeat_interval,omitempty"`
	Users          []ExpenseUser `json:"users,omitempty"           yaml:"users,omitempty"`
}

// ExpenseCreateRequest carries the fields for creating an expense. Leave
// Users empty and set SplitEqually to divide the cost across the group.
type ExpenseCreateRequest struct {
	Cost         string        `json:"cost"                      yaml:"cost"`
	Description  string        `json:"description"               yaml:"description"`
	GroupID      int64         `json:"group_id"                  yaml:"group_id"`
	SplitEqually bool          `json:"split_equally,omitempty"   yaml:"split_equally,omitempty"`
	Payment      bool          `json:"payment,omitempty"         yaml:"payment,omitempty"`
	CurrencyCode string        `json:"currency_code,omitempty"   yaml:"currency_code,omitempty"`
	CategoryID   int64         `json:"category_id,omitempty"     yaml:"category_id,omitempty"`
	Date         *time.Time    `json:"date,omitempty"            yaml:"date,omitempty"`
	Details      string        `json:"details,omitempty"         yaml:"details,omitempty"`
	Users        []ExpenseUser `json:"users,omitempty"           yaml:"users,omitempty"`
}

// ExpenseUpdateRequest carries the mutable fields of an expense.
type ExpenseUpdateRequest struct {
	Cost         string        `json:"cost,omitempty"          yaml:"cost,omitempty"`
	Description  string        `json:"description,omitempty"   yaml:"description,omitempty"`
	GroupID      int64         `json:"group_id,omitempty"      yaml:"group_id,omitempty"`
	CurrencyCode string        `json:"currency_code,omitempty" yaml:"currency_code,omitempty"`
	CategoryID   int64         `json:"category_id,omitempty"   yaml:"category_id,omitempty"`
	Date         *time.Time    `json:"date,omitempty"          yaml:"date,omitempty"`
	Details      string        `json:"details,omitempty"       yaml:"details,omitempty"`
	Users        []ExpenseUser `json:"users,omitempty"         yaml:"users,omitempty"`
}

// ExpenseListOptions filters expense listings.
type ExpenseListOptions struct {
	GroupID       int64
	FriendID      int64
	DatedAfter    *time.Time
	DatedBefore   *time.Time
	UpdatedAfter  *time.Time
	UpdatedBefore *time.Time
	Limit         int
	Offset        int
}

// Friend is a user the current user shares expenses with.
type Friend struct {
	User    `yaml:",inline"`
	Balance []Balance `json:"balance,omitempty" yaml:"balance,omitempty"`
}

// FriendCreateRequest adds a friend by contact details.
type FriendCreateRequest struct {
	UserEmail     string `json:"user_email"                yaml:"user_email"`
	UserFirstName string `json:"user_first_name,omitempty" yaml:"user_first_name,omitempty"`
	UserLastName  string `json:"user_last_name,omitempty"  yaml:"user_last_name,omitempty"`
}

// Comment is a note attached to an expense.
type Comment struct {
	ID           int64      `json:"id"                   yaml:"id"`
	Content      string     `json:"content"              yaml:"content"`
	CommentType  string     `json:"comment_type"         yaml:"comment_type"`
	RelationType string     `json:"relation_type"        yaml:"relation_type"`
	RelationID   int64      `json:"relation_id"          yaml:"relation_id"`
	CreatedAt    time.Time  `json:"created_at"           yaml:"created_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" yaml:"deleted_at,omitempty"`
	User         *User      `json:"user,omitempty"       yaml:"user,omitempty"`
}

// CommentCreateRequest attaches a comment to an expense.
type CommentCreateRequest struct {
	ExpenseID int64  `json:"expense_id" yaml:"expense_id"`
	Content   string `json:"content"    yaml:"content"`
}

// NotificationSource names the resource a notification refers to.
type NotificationSource struct {
	Type string `json:"type" yaml:"type"`
	ID   int64  `json:"id"   yaml:"id"`
}

// Notification is one entry of the account's notification feed.
type Notification struct {
	ID        int64               `json:"id"                  yaml:"id"`
	Type      int                 `json:"type"                yaml:"type"`
	CreatedAt time.Time           `json:"created_at"          yaml:"created_at"`
	CreatedBy int64               `json:"created_by"          yaml:"created_by"`
	Source    *NotificationSource `json:"source,omitempty"    yaml:"source,omitempty"`
	Content   string              `json:"content"             yaml:"content"`
	ImageURL  string              `json:"image_url,omitempty" yaml:"image_url,omitempty"`
}

// NotificationListOptions filters the notification feed.
type NotificationListOptions struct {
	UpdatedAfter *time.Time
	Limit        int
}

// Currency is a currency the API supports.
type Currency struct {
	CurrencyCode string `json:"currency_code" yaml:"currency_code"`
	Unit         string `json:"unit"          yaml:"unit"`
}
