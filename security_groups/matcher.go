package security_groups

// matchRuleID scans rules for the first entry whose semantic tuple
// (direction, permission, protocol, endpoint kinds and values, port
// range) equals want's, and returns its provider-assigned id. The API
// never returns a rule id from the authorize call itself, so this scan
// is the only way to recover one. The provider can in principle hold
// duplicate rules with identical tuples; they are indistinguishable
// here and the first in remote order wins.
func matchRuleID(rules []Rule, want Rule) string {
	for _, rule := range rules {
		if rule.Direction != want.Direction {
			continue
		}
		if rule.Permission != want.Permission {
			continue
		}
		if rule.Protocol != want.Protocol {
			continue
		}
		if rule.StartPort != want.StartPort || rule.EndPort != want.EndPort {
			continue
		}
		if !targetsEqual(rule.Source, want.Source) {
			continue
		}
		if !targetsEqual(rule.Destination, want.Destination) {
			continue
		}
		return rule.ID
	}
	return ""
}

func targetsEqual(a, b RuleTarget) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case TargetCIDR:
		return normalizeCIDR(a.CIDR) == normalizeCIDR(b.CIDR)
	case TargetGlobal:
		return a.GroupID == b.GroupID
	}
	return false
}
