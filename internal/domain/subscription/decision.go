package subscription

type DenyReason string

const (
	ReasonLimitReached         DenyReason = "limit_reached"
	ReasonSubscriptionInactive DenyReason = "subscription_inactive"
)

// Decision is the outcome of a consume attempt. For allowed decisions Used is
// the counter right after this attempt's own increment; for denials it is
// the value that blocked it.
type Decision struct {
	Allowed bool
	Reason  DenyReason
	Kind    Kind
	Plan    Plan
	Used    int
	Limit   int
}
