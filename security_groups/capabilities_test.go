package security_groups_test

import (
	"github.com/daniellemayne/dasein-cloud-cloudstack/security_groups"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Capabilities", func() {
	var capabilities *security_groups.Capabilities

	BeforeEach(func() {
		capabilities = (&security_groups.Manager{}).Capabilities()
	})

	It("is built once per manager", func() {
		manager := &security_groups.Manager{}
		Expect(manager.Capabilities()).To(BeIdenticalTo(manager.Capabilities()))
	})

	It("names the provider's term for a group", func() {
		Expect(capabilities.ProviderTermForSecurityGroup()).To(Equal("security group"))
	})

	It("supports TCP and UDP", func() {
		Expect(capabilities.SupportedProtocols()).To(Equal([]security_groups.Protocol{
			security_groups.ProtocolTCP,
			security_groups.ProtocolUDP,
		}))
	})

	It("supports both directions, but only outside VLANs", func() {
		Expect(capabilities.SupportedDirections(false)).To(Equal([]security_groups.Direction{
			security_groups.DirectionIngress,
			security_groups.DirectionEgress,
		}))
		Expect(capabilities.SupportedDirections(true)).To(BeEmpty())
	})

	It("only ever allows traffic", func() {
		Expect(capabilities.SupportedPermissions(false)).To(Equal([]security_groups.Permission{
			security_groups.PermissionAllow,
		}))
		Expect(capabilities.SupportedPermissions(true)).To(BeEmpty())
	})

	It("pins the CIDR endpoint to the traffic's remote side", func() {
		Expect(capabilities.SupportedSourceTypes(false, security_groups.DirectionIngress)).To(Equal(
			[]security_groups.TargetType{security_groups.TargetCIDR}))
		Expect(capabilities.SupportedSourceTypes(false, security_groups.DirectionEgress)).To(Equal(
			[]security_groups.TargetType{security_groups.TargetGlobal}))
		Expect(capabilities.SupportedDestinationTypes(false, security_groups.DirectionIngress)).To(Equal(
			[]security_groups.TargetType{security_groups.TargetGlobal}))
		Expect(capabilities.SupportedDestinationTypes(false, security_groups.DirectionEgress)).To(Equal(
			[]security_groups.TargetType{security_groups.TargetCIDR}))
		Expect(capabilities.SupportedSourceTypes(true, security_groups.DirectionIngress)).To(BeEmpty())
		Expect(capabilities.SupportedDestinationTypes(true, security_groups.DirectionEgress)).To(BeEmpty())
	})

	It("supports ALLOW rules outside VLANs only", func() {
		Expect(capabilities.SupportsRules(security_groups.DirectionIngress, security_groups.PermissionAllow, false)).To(BeTrue())
		Expect(capabilities.SupportsRules(security_groups.DirectionEgress, security_groups.PermissionAllow, false)).To(BeTrue())
		Expect(capabilities.SupportsRules(security_groups.DirectionIngress, security_groups.PermissionDeny, false)).To(BeFalse())
		Expect(capabilities.SupportsRules(security_groups.DirectionIngress, security_groups.PermissionAllow, true)).To(BeFalse())
	})

	It("does not support group-to-group sources", func() {
		Expect(capabilities.SupportsSecurityGroupSources()).To(BeFalse())
	})

	It("supports group lifecycle outside VLANs", func() {
		Expect(capabilities.SupportsSecurityGroupCreation(false)).To(BeTrue())
		Expect(capabilities.SupportsSecurityGroupCreation(true)).To(BeFalse())
		Expect(capabilities.SupportsSecurityGroupDeletion()).To(BeTrue())
		Expect(capabilities.RequiresRulesOnCreation()).To(BeFalse())
	})
})
