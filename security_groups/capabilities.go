package security_groups

// Capabilities describes what the CloudStack security group model
// supports. The descriptor is stateless; Manager hands out a single
// lazily built instance.
type Capabilities struct{}

func (m *Manager) Capabilities() *Capabilities {
	m.capabilitiesOnce.Do(func() {
		m.capabilities = &Capabilities{}
	})
	return m.capabilities
}

func (c *Capabilities) ProviderTermForSecurityGroup() string {
	return "security group"
}

func (c *Capabilities) SupportedProtocols() []Protocol {
	return []Protocol{ProtocolTCP, ProtocolUDP}
}

func (c *Capabilities) SupportedDirections(inVlan bool) []Direction {
	if inVlan {
		return nil
	}
	return []Direction{DirectionIngress, DirectionEgress}
}

func (c *Capabilities) SupportedPermissions(inVlan bool) []Permission {
	if inVlan {
		return nil
	}
	return []Permission{PermissionAllow}
}

// SupportedSourceTypes reflects the API's asymmetric rule shape: an
// ingress rule admits traffic from a CIDR into the group, an egress
// rule sends traffic from the group out to a CIDR.
func (c *Capabilities) SupportedSourceTypes(inVlan bool, direction Direction) []TargetType {
	if inVlan {
		return nil
	}
	if direction == DirectionEgress {
		return []TargetType{TargetGlobal}
	}
	return []TargetType{TargetCIDR}
}

func (c *Capabilities) SupportedDestinationTypes(inVlan bool, direction Direction) []TargetType {
	if inVlan {
		return nil
	}
	if direction == DirectionEgress {
		return []TargetType{TargetCIDR}
	}
	return []TargetType{TargetGlobal}
}

func (c *Capabilities) SupportsRules(direction Direction, permission Permission, inVlan bool) bool {
	return !inVlan && permission == PermissionAllow
}

func (c *Capabilities) SupportsSecurityGroupSources() bool {
	return false
}

func (c *Capabilities) SupportsSecurityGroupCreation(inVlan bool) bool {
	return !inVlan
}

func (c *Capabilities) SupportsSecurityGroupDeletion() bool {
	return true
}

func (c *Capabilities) RequiresRulesOnCreation() bool {
	return false
}
