package security_groups

import "strings"

type Direction string

const (
	DirectionIngress Direction = "INGRESS"
	DirectionEgress  Direction = "EGRESS"
)

type Permission string

const (
	PermissionAllow Permission = "ALLOW"
	PermissionDeny  Permission = "DENY"
)

type Protocol string

const (
	ProtocolTCP  Protocol = "TCP"
	ProtocolUDP  Protocol = "UDP"
	ProtocolICMP Protocol = "ICMP"
)

// ParseProtocol maps a wire protocol string to its normalized form. The
// API emits protocols in lower case.
func ParseProtocol(value string) Protocol {
	return Protocol(strings.ToUpper(value))
}

type TargetType string

const (
	TargetCIDR   TargetType = "CIDR"
	TargetGlobal TargetType = "GLOBAL"
)

// RuleTarget is one endpoint of a rule: either an external network
// block, or a reference to the rule's own security group. Exactly one
// of CIDR and GroupID is meaningful, selected by Type.
type RuleTarget struct {
	Type    TargetType
	CIDR    string
	GroupID string
}

func CIDRTarget(cidr string) RuleTarget {
	return RuleTarget{Type: TargetCIDR, CIDR: cidr}
}

func GlobalTarget(groupID string) RuleTarget {
	return RuleTarget{Type: TargetGlobal, GroupID: groupID}
}

type SecurityGroup struct {
	ID          string
	Name        string
	Description string
	RegionID    string
	Active      bool
	Available   bool
}

// GroupStatus is the availability projection of a group. CloudStack
// reports no degraded state for security groups, so decoded statuses
// are always available.
type GroupStatus struct {
	ID        string
	Available bool
}

// Rule is one directional access-control entry of a security group.
// For ingress rules the source is a CIDR and the destination is the
// group itself; egress rules are the reverse. The provider assigns ID
// on creation; it is never chosen by the client.
type Rule struct {
	ID          string
	GroupID     string
	Direction   Direction
	Permission  Permission
	Protocol    Protocol
	Source      RuleTarget
	Destination RuleTarget
	StartPort   int
	EndPort     int
}

type CreateOptions struct {
	Name        string
	Description string
	VlanID      string
}
