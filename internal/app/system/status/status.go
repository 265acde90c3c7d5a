// internal/app/system/status/status.go
package status

// Shared status values used across collections.
const (
	Active   = "active"
	Inactive = "inactive"

	Pending  = "pending"
	Approved = "approved"
	Rejected = "rejected"

	InReview = "in_review"

	Draft     = "draft"
	Published = "published"

	Unread = "unread"
	Read   = "read"

	Disabled = "disabled"
)

// Set is a closed vocabulary of status values for one collection.
// Transitions are not validated: an admin can approve a rejected
// submission or unpublish a published course, and the new value simply
// replaces the old one.
type Set []string

func (s Set) Valid(v string) bool {
	for _, w := range s {
		if w == v {
			return true
		}
	}
	return false
}

// Initial is the value documents in this vocabulary start with.
func (s Set) Initial() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

var (
	// Review covers moderated submissions: solutions, ideas, partner
	// applications.
	Review = Set{Pending, Approved, Rejected}

	// Capstone review starts in in_review rather than pending.
	CapstoneReview = Set{InReview, Approved, Rejected}

	// Publication covers authored content: blog posts, courses.
	Publication = Set{Draft, Published}

	// Inbox covers contact messages.
	Inbox = Set{Unread, Read}

	// Visibility covers listings that are toggled on and off:
	// challenges, programs.
	Visibility = Set{Active, Inactive}

	// AccountStates covers sign-in accounts.
	AccountStates = Set{Active, Disabled}
)
