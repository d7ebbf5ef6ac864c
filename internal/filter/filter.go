// Package filter implements the blacklist/whitelist admission policy
// applied to classified file extensions.
package filter

// Policy decides whether a file extension is admitted. The two sets are
// mutually exclusive in effect: a non-empty whitelist takes precedence and
// the blacklist is then ignored entirely.
type Policy struct {
	blacklist map[string]struct{}
	whitelist map[string]struct{}
}

// New builds a Policy from the given extension lists. Entries are expected
// to be normalized already (lower-cased, no leading dot); config and flag
// ingestion take care of that.
func New(blacklist, whitelist []string) *Policy {
	return &Policy{
		blacklist: toSet(blacklist),
		whitelist: toSet(whitelist),
	}
}

func toSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		set[ext] = struct{}{}
	}
	return set
}

// Admits reports whether the extension passes the policy: membership in the
// whitelist when one is set, absence from the blacklist otherwise.
func (p *Policy) Admits(ext string) bool {
	if len(p.whitelist) > 0 {
		_, ok := p.whitelist[ext]
		return ok
	}
	_, ok := p.blacklist[ext]
	return !ok
}

// Active reports which set drives admission ("whitelist" or "blacklist").
func (p *Policy) Active() string {
	if len(p.whitelist) > 0 {
		return "whitelist"
	}
	return "blacklist"
}

// InActive reports whether the extension is a member of the driving set.
// Analyze uses this for its matched count; note this is not the same as
// Admits (for a blacklist, matched extensions are the rejected ones).
func (p *Policy) InActive(ext string) bool {
	if len(p.whitelist) > 0 {
		_, ok := p.whitelist[ext]
		return ok
	}
	_, ok := p.blacklist[ext]
	return ok
}
