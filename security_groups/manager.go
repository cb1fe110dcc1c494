package security_groups

//go:generate counterfeiter -generate

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"code.cloudfoundry.org/lager/v3"

	"github.com/daniellemayne/dasein-cloud-cloudstack/cs_client"
)

const (
	authorizeSecurityGroupEgress  = "authorizeSecurityGroupEgress"
	authorizeSecurityGroupIngress = "authorizeSecurityGroupIngress"
	createSecurityGroup           = "createSecurityGroup"
	deleteSecurityGroup           = "deleteSecurityGroup"
	listSecurityGroups            = "listSecurityGroups"
	revokeSecurityGroupEgress     = "revokeSecurityGroupEgress"
	revokeSecurityGroupIngress    = "revokeSecurityGroupIngress"
)

//counterfeiter:generate -o fakes/security_group_manager.go --fake-name SecurityGroupManager . SecurityGroupManager
type SecurityGroupManager interface {
	Create(options CreateOptions) (string, error)
	Delete(groupID string) error
	Authorize(groupID string, direction Direction, permission Permission, source RuleTarget, protocol Protocol, destination RuleTarget, startPort, endPort int) (string, error)
	Revoke(ruleID string) error
	RevokeMatching(groupID string, direction Direction, permission Permission, source string, protocol Protocol, target RuleTarget, startPort, endPort int) error
	Get(groupID string) (*SecurityGroup, error)
	Rules(groupID string) ([]Rule, error)
	List() ([]SecurityGroup, error)
	ListStatus() ([]GroupStatus, error)
	ListForVM(vmID string) ([]string, error)
}

// Manager implements security group operations against the CloudStack
// API. It holds no cache: every read re-fetches from the provider, so
// results always reflect remote state at call time.
type Manager struct {
	Client   cs_client.APIClient
	Logger   lager.Logger
	RegionID string

	capabilitiesOnce sync.Once
	capabilities     *Capabilities
}

// Create provisions an empty security group and returns its id. VLAN
// scoping is not supported by the provider's security group model.
func (m *Manager) Create(options CreateOptions) (string, error) {
	if options.VlanID != "" {
		return "", errors.New("VLAN security groups are not supported")
	}

	doc, err := m.Client.Do(createSecurityGroup, []cs_client.Param{
		{Key: "name", Value: options.Name},
		{Key: "description", Value: options.Description},
	})
	if err != nil {
		return "", fmt.Errorf("create security group: %s", err)
	}

	groupID, ok := doc.FirstValue("id")
	if !ok {
		return "", errors.New("create security group: provider returned no group id")
	}
	return groupID, nil
}

// Delete removes a group, sweeping its rules first. The sweep is best
// effort on purpose: an orphaned rule is recoverable, a group delete
// blocked by a transient revoke failure is not. Sweep errors are
// logged and dropped; only the delete call itself can fail Delete.
func (m *Manager) Delete(groupID string) error {
	logger := m.Logger.Session("delete", lager.Data{"group-id": groupID})

	rules, err := m.Rules(groupID)
	if err != nil {
		logger.Info("skipping-rule-sweep", lager.Data{"error": err.Error()})
	}
	for _, rule := range rules {
		if err := m.Revoke(rule.ID); err != nil {
			logger.Info("rule-sweep-revoke-failed", lager.Data{"rule-id": rule.ID, "error": err.Error()})
		}
	}

	_, err = m.Client.Do(deleteSecurityGroup, []cs_client.Param{{Key: "id", Value: groupID}})
	if err != nil {
		return fmt.Errorf("delete security group: %s", err)
	}
	return nil
}

// Authorize adds a rule to a group and returns the provider-assigned
// rule id. The authorize call only yields a job handle, so once the
// job completes the group's rules are re-listed and matched against
// the requested tuple to recover the id.
func (m *Manager) Authorize(groupID string, direction Direction, permission Permission, source RuleTarget, protocol Protocol, destination RuleTarget, startPort, endPort int) (string, error) {
	if permission != PermissionAllow {
		return "", errors.New("only ALLOW rules are supported")
	}

	cidrEndpoint := source
	if direction == DirectionEgress {
		cidrEndpoint = destination
	}
	switch cidrEndpoint.Type {
	case TargetCIDR:
	case TargetGlobal:
		return "", errors.New("security group sources are not supported")
	default:
		return "", fmt.Errorf("unsupported rule target type %q", cidrEndpoint.Type)
	}
	cidr := normalizeCIDR(cidrEndpoint.CIDR)

	command := authorizeSecurityGroupIngress
	if direction == DirectionEgress {
		command = authorizeSecurityGroupEgress
	}
	doc, err := m.Client.Do(command, []cs_client.Param{
		{Key: "securitygroupid", Value: groupID},
		{Key: "cidrlist", Value: cidr},
		{Key: "startport", Value: strconv.Itoa(startPort)},
		{Key: "endport", Value: strconv.Itoa(endPort)},
		{Key: "protocol", Value: string(protocol)},
	})
	if err != nil {
		return "", fmt.Errorf("authorize rule: %s", err)
	}
	if _, err := m.Client.WaitForJob(doc); err != nil {
		return "", fmt.Errorf("authorize rule: %s", err)
	}

	ruleID, err := m.findRuleID(groupID, direction, permission, protocol, source, destination, startPort, endPort)
	if err != nil {
		return "", err
	}
	if ruleID == "" {
		return "", errors.New("unable to identify newly created security group rule")
	}
	return ruleID, nil
}

// Revoke removes a rule by id. A bare rule id carries no direction and
// the API has no rule-by-id lookup, so every group's rule set is
// searched to learn which revoke operation applies. An id that no
// group holds is treated as already revoked.
func (m *Manager) Revoke(ruleID string) error {
	groups, err := m.List()
	if err != nil {
		return err
	}

	var target *Rule
	for _, group := range groups {
		rules, err := m.Rules(group.ID)
		if err != nil {
			return err
		}
		for i := range rules {
			if rules[i].ID == ruleID {
				target = &rules[i]
				break
			}
		}
		if target != nil {
			break
		}
	}
	if target == nil {
		return nil
	}

	command := revokeSecurityGroupIngress
	if target.Direction == DirectionEgress {
		command = revokeSecurityGroupEgress
	}
	_, err = m.Client.Do(command, []cs_client.Param{{Key: "id", Value: ruleID}})
	if err != nil {
		return fmt.Errorf("revoke rule: %s", err)
	}
	return nil
}

// RevokeMatching removes the rule identified by the given attribute
// tuple. A tuple that matches nothing is logged and ignored: the rule
// being gone already is the caller's desired state.
func (m *Manager) RevokeMatching(groupID string, direction Direction, permission Permission, source string, protocol Protocol, target RuleTarget, startPort, endPort int) error {
	if permission != PermissionAllow {
		return errors.New("only ALLOW rules are supported")
	}

	var sourceEndpoint, destinationEndpoint RuleTarget
	if direction == DirectionEgress {
		sourceEndpoint = target
		destinationEndpoint = CIDRTarget(source)
	} else {
		sourceEndpoint = CIDRTarget(source)
		destinationEndpoint = target
	}

	ruleID, err := m.findRuleID(groupID, direction, permission, protocol, sourceEndpoint, destinationEndpoint, startPort, endPort)
	if err != nil {
		return err
	}
	if ruleID == "" {
		m.Logger.Info("no-matching-rule", lager.Data{
			"group-id":   groupID,
			"direction":  direction,
			"permission": permission,
			"source":     source,
			"protocol":   protocol,
			"start-port": startPort,
			"end-port":   endPort,
		})
		return nil
	}
	return m.Revoke(ruleID)
}

// Get returns the group with the given id, or nil when the provider
// does not know it.
func (m *Manager) Get(groupID string) (*SecurityGroup, error) {
	if err := m.checkRegion(); err != nil {
		return nil, err
	}

	doc, err := m.Client.Do(listSecurityGroups, []cs_client.Param{{Key: "id", Value: groupID}})
	if err != nil {
		if cs_client.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get security group: %s", err)
	}

	for _, el := range doc.All("securitygroup") {
		if group := decodeSecurityGroup(el, m.RegionID); group != nil {
			return group, nil
		}
	}
	return nil, nil
}

// Rules returns every rule of a group, flattened across pages.
func (m *Manager) Rules(groupID string) ([]Rule, error) {
	rules := []Rule{}
	err := m.forEachPage([]cs_client.Param{{Key: "id", Value: groupID}}, func(doc cs_client.Document) error {
		pageRules, err := decodeRules(doc, groupID)
		if err != nil {
			return err
		}
		rules = append(rules, pageRules...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list security group rules: %s", err)
	}
	return rules, nil
}

func (m *Manager) List() ([]SecurityGroup, error) {
	if err := m.checkRegion(); err != nil {
		return nil, err
	}

	groups := []SecurityGroup{}
	err := m.forEachPage(nil, func(doc cs_client.Document) error {
		for _, el := range doc.All("securitygroup") {
			if group := decodeSecurityGroup(el, m.RegionID); group != nil {
				groups = append(groups, *group)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list security groups: %s", err)
	}
	return groups, nil
}

func (m *Manager) ListStatus() ([]GroupStatus, error) {
	if err := m.checkRegion(); err != nil {
		return nil, err
	}

	statuses := []GroupStatus{}
	err := m.forEachPage(nil, func(doc cs_client.Document) error {
		for _, el := range doc.All("securitygroup") {
			if status := decodeStatus(el); status != nil {
				statuses = append(statuses, *status)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list security group status: %s", err)
	}
	return statuses, nil
}

// ListForVM returns the ids of the groups attached to a virtual
// machine.
func (m *Manager) ListForVM(vmID string) ([]string, error) {
	if err := m.checkRegion(); err != nil {
		return nil, err
	}

	groupIDs := []string{}
	err := m.forEachPage([]cs_client.Param{{Key: "virtualmachineId", Value: vmID}}, func(doc cs_client.Document) error {
		for _, el := range doc.All("securitygroup") {
			if group := decodeSecurityGroup(el, m.RegionID); group != nil {
				groupIDs = append(groupIDs, group.ID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list security groups for vm: %s", err)
	}
	return groupIDs, nil
}

// forEachPage runs fn on every page of a listSecurityGroups result.
// The first page's document is reused; later pages are re-fetched with
// the original filter params plus page selectors so filters survive
// pagination. Every listing operation goes through here.
func (m *Manager) forEachPage(params []cs_client.Param, fn func(cs_client.Document) error) error {
	doc, err := m.Client.Do(listSecurityGroups, params)
	if err != nil {
		return err
	}
	pages, err := pageCount(doc)
	if err != nil {
		return err
	}

	for page := 1; page <= pages; page++ {
		if page > 1 {
			paged := append([]cs_client.Param{}, params...)
			paged = append(paged,
				cs_client.Param{Key: "pagesize", Value: strconv.Itoa(pageSize)},
				cs_client.Param{Key: "page", Value: strconv.Itoa(page)},
			)
			doc, err = m.Client.Do(listSecurityGroups, paged)
			if err != nil {
				return err
			}
		}
		if err := fn(doc); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) findRuleID(groupID string, direction Direction, permission Permission, protocol Protocol, source, destination RuleTarget, startPort, endPort int) (string, error) {
	rules, err := m.Rules(groupID)
	if err != nil {
		return "", err
	}
	return matchRuleID(rules, Rule{
		GroupID:     groupID,
		Direction:   direction,
		Permission:  permission,
		Protocol:    protocol,
		Source:      source,
		Destination: destination,
		StartPort:   startPort,
		EndPort:     endPort,
	}), nil
}

func (m *Manager) checkRegion() error {
	if m.RegionID == "" {
		return errors.New("no region was configured for this request")
	}
	return nil
}
