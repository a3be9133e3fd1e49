package shared

// Capabilities gating destructive booking and ledger commands. The caller
// supplies them; the engine never embeds a credential scheme.
const (
	CapBookingDelete  = "booking.delete"
	CapBookingRestore = "booking.restore"
	CapBookingPurge   = "booking.purge"
	CapLedgerDelete   = "ledger.event.delete"
)

// Authorizer answers whether a capability has been granted.
type Authorizer interface {
	Allows(capability string) bool
}

// CapabilitySet is an in-memory Authorizer backed by a grant list.
type CapabilitySet map[string]struct{}

// NewCapabilitySet builds a set from the granted capabilities.
func NewCapabilitySet(capabilities ...string) CapabilitySet {
	set := make(CapabilitySet, len(capabilities))
	for _, c := range capabilities {
		set[c] = struct{}{}
	}
	return set
}

// Allows reports whether the capability is in the set.
func (s CapabilitySet) Allows(capability string) bool {
	_, ok := s[capability]
	return ok
}

// Require returns ErrCapabilityRequired unless authz grants the capability.
func Require(authz Authorizer, capability string) error {
	if authz == nil || !authz.Allows(capability) {
		return ErrCapabilityRequired
	}
	return nil
}
