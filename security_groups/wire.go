package security_groups

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daniellemayne/dasein-cloud-cloudstack/cs_client"
)

// The API returns at most this many entities per list call and reports
// the full count in the envelope; callers page through the rest.
const pageSize = 500

// decodeSecurityGroup maps one securitygroup fragment to a group.
// Fragments without an id decode to nil. Name defaults to the id and
// description to the name, matching provider display conventions.
func decodeSecurityGroup(el cs_client.Element, regionID string) *SecurityGroup {
	group := SecurityGroup{
		RegionID:  regionID,
		Active:    true,
		Available: true,
	}
	if value, ok := el.ChildValue("id"); ok {
		group.ID = value
	}
	if value, ok := el.ChildValue("name"); ok {
		group.Name = value
	}
	if value, ok := el.ChildValue("description"); ok {
		group.Description = value
	}
	if group.ID == "" {
		return nil
	}
	if group.Name == "" {
		group.Name = group.ID
	}
	if group.Description == "" {
		group.Description = group.Name
	}
	return &group
}

func decodeStatus(el cs_client.Element) *GroupStatus {
	id, ok := el.ChildValue("id")
	if !ok {
		return nil
	}
	return &GroupStatus{ID: id, Available: true}
}

// decodeRule maps one ingressrule/egressrule fragment to a rule. The
// fragment carries neither its direction nor its owning group; both
// come from the enclosing list call. A fragment with only one port
// bound decodes to a one-port range.
func decodeRule(groupID string, el cs_client.Element, direction Direction) (*Rule, error) {
	rule := Rule{
		GroupID:    groupID,
		Direction:  direction,
		Permission: PermissionAllow,
		Protocol:   ProtocolTCP,
		StartPort:  -1,
		EndPort:    -1,
	}
	cidr := "0.0.0.0/0"

	if value, ok := el.ChildValue("cidr"); ok {
		cidr = value
	}
	if value, ok := el.ChildValue("startport"); ok {
		port, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("parse startport %q: %s", value, err)
		}
		rule.StartPort = port
	}
	if value, ok := el.ChildValue("endport"); ok {
		port, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("parse endport %q: %s", value, err)
		}
		rule.EndPort = port
	}
	if value, ok := el.ChildValue("protocol"); ok {
		rule.Protocol = ParseProtocol(value)
	}
	if value, ok := el.ChildValue("ruleid"); ok {
		rule.ID = value
	}

	if rule.StartPort == -1 && rule.EndPort != -1 {
		rule.StartPort = rule.EndPort
	}
	if rule.EndPort == -1 && rule.StartPort != -1 {
		rule.EndPort = rule.StartPort
	}

	cidr = normalizeCIDR(cidr)
	switch direction {
	case DirectionEgress:
		rule.Source = GlobalTarget(groupID)
		rule.Destination = CIDRTarget(cidr)
	default:
		rule.Source = CIDRTarget(cidr)
		rule.Destination = GlobalTarget(groupID)
	}
	return &rule, nil
}

// decodeRules flattens every rule fragment in a list page, ingress
// first, preserving remote order within each tag group.
func decodeRules(doc cs_client.Document, groupID string) ([]Rule, error) {
	var rules []Rule
	for _, el := range doc.All("ingressrule") {
		rule, err := decodeRule(groupID, el, DirectionIngress)
		if err != nil {
			return nil, err
		}
		rules = append(rules, *rule)
	}
	for _, el := range doc.All("egressrule") {
		rule, err := decodeRule(groupID, el, DirectionEgress)
		if err != nil {
			return nil, err
		}
		rules = append(rules, *rule)
	}
	return rules, nil
}

// pageCount derives the number of pages from the envelope's count
// element. An envelope without a count is a single page.
func pageCount(doc cs_client.Document) (int, error) {
	value, ok := doc.FirstValue("count")
	if !ok {
		return 1, nil
	}
	count, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("parse count %q: %s", value, err)
	}
	pages := count / pageSize
	if count%pageSize > 0 {
		pages++
	}
	if pages < 1 {
		pages = 1
	}
	return pages, nil
}

// normalizeCIDR widens a bare address to a host route.
func normalizeCIDR(cidr string) string {
	if !strings.Contains(cidr, "/") {
		return cidr + "/32"
	}
	return cidr
}
