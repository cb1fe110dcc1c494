package security_groups_test

import (
	"errors"
	"time"

	"github.com/daniellemayne/dasein-cloud-cloudstack/security_groups"
	"github.com/daniellemayne/dasein-cloud-cloudstack/security_groups/fakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MetricsWrapper", func() {
	var (
		fakeManager       *fakes.SecurityGroupManager
		fakeMetricsSender *fakes.MetricsSender
		metricsWrapper    *security_groups.MetricsWrapper
	)

	BeforeEach(func() {
		fakeManager = &fakes.SecurityGroupManager{}
		fakeMetricsSender = &fakes.MetricsSender{}
		metricsWrapper = &security_groups.MetricsWrapper{
			Manager:       fakeManager,
			MetricsSender: fakeMetricsSender,
		}
	})

	Describe("Create", func() {
		BeforeEach(func() {
			fakeManager.CreateReturns("sg-new", nil)
		})

		It("calls through and emits a success duration", func() {
			groupID, err := metricsWrapper.Create(security_groups.CreateOptions{Name: "web"})
			Expect(err).NotTo(HaveOccurred())
			Expect(groupID).To(Equal("sg-new"))

			Expect(fakeManager.CreateCallCount()).To(Equal(1))
			Expect(fakeManager.CreateArgsForCall(0)).To(Equal(security_groups.CreateOptions{Name: "web"}))

			Expect(fakeMetricsSender.SendDurationCallCount()).To(Equal(1))
			name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
			Expect(name).To(Equal("SecurityGroupCreateSuccessTime"))
		})

		Context("when creating fails", func() {
			BeforeEach(func() {
				fakeManager.CreateReturns("", errors.New("banana"))
			})

			It("emits an error counter and an error duration", func() {
				_, err := metricsWrapper.Create(security_groups.CreateOptions{Name: "web"})
				Expect(err).To(MatchError("banana"))

				Expect(fakeMetricsSender.IncrementCounterCallCount()).To(Equal(1))
				Expect(fakeMetricsSender.IncrementCounterArgsForCall(0)).To(Equal("SecurityGroupCreateError"))

				Expect(fakeMetricsSender.SendDurationCallCount()).To(Equal(1))
				name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
				Expect(name).To(Equal("SecurityGroupCreateErrorTime"))
			})
		})
	})

	Describe("Authorize", func() {
		BeforeEach(func() {
			fakeManager.AuthorizeReturns("rule-1", nil)
		})

		It("passes every argument through and emits a success duration", func() {
			ruleID, err := metricsWrapper.Authorize("sg-1",
				security_groups.DirectionIngress, security_groups.PermissionAllow,
				security_groups.CIDRTarget("10.0.0.0/24"), security_groups.ProtocolTCP,
				security_groups.GlobalTarget("sg-1"), 80, 443)
			Expect(err).NotTo(HaveOccurred())
			Expect(ruleID).To(Equal("rule-1"))

			groupID, direction, permission, source, protocol, destination, startPort, endPort := fakeManager.AuthorizeArgsForCall(0)
			Expect(groupID).To(Equal("sg-1"))
			Expect(direction).To(Equal(security_groups.DirectionIngress))
			Expect(permission).To(Equal(security_groups.PermissionAllow))
			Expect(source).To(Equal(security_groups.CIDRTarget("10.0.0.0/24")))
			Expect(protocol).To(Equal(security_groups.ProtocolTCP))
			Expect(destination).To(Equal(security_groups.GlobalTarget("sg-1")))
			Expect(startPort).To(Equal(80))
			Expect(endPort).To(Equal(443))

			name, duration := fakeMetricsSender.SendDurationArgsForCall(0)
			Expect(name).To(Equal("SecurityGroupAuthorizeSuccessTime"))
			Expect(duration).To(BeNumerically(">=", time.Duration(0)))
		})

		Context("when authorizing fails", func() {
			BeforeEach(func() {
				fakeManager.AuthorizeReturns("", errors.New("banana"))
			})

			It("emits an error counter and an error duration", func() {
				_, err := metricsWrapper.Authorize("sg-1",
					security_groups.DirectionIngress, security_groups.PermissionAllow,
					security_groups.CIDRTarget("10.0.0.0/24"), security_groups.ProtocolTCP,
					security_groups.GlobalTarget("sg-1"), 80, 443)
				Expect(err).To(MatchError("banana"))

				Expect(fakeMetricsSender.IncrementCounterArgsForCall(0)).To(Equal("SecurityGroupAuthorizeError"))
				name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
				Expect(name).To(Equal("SecurityGroupAuthorizeErrorTime"))
			})
		})
	})

	Describe("Delete", func() {
		It("calls through and emits a success duration", func() {
			Expect(metricsWrapper.Delete("sg-1")).To(Succeed())

			Expect(fakeManager.DeleteCallCount()).To(Equal(1))
			Expect(fakeManager.DeleteArgsForCall(0)).To(Equal("sg-1"))

			name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
			Expect(name).To(Equal("SecurityGroupDeleteSuccessTime"))
		})
	})

	Describe("Revoke", func() {
		It("calls through and emits a success duration", func() {
			Expect(metricsWrapper.Revoke("rule-1")).To(Succeed())

			Expect(fakeManager.RevokeArgsForCall(0)).To(Equal("rule-1"))
			name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
			Expect(name).To(Equal("SecurityGroupRevokeSuccessTime"))
		})
	})

	Describe("RevokeMatching", func() {
		It("passes every argument through and emits a success duration", func() {
			err := metricsWrapper.RevokeMatching("sg-1",
				security_groups.DirectionEgress, security_groups.PermissionAllow,
				"10.0.0.0/24", security_groups.ProtocolUDP,
				security_groups.GlobalTarget("sg-1"), 53, 53)
			Expect(err).NotTo(HaveOccurred())

			groupID, direction, permission, source, protocol, target, startPort, endPort := fakeManager.RevokeMatchingArgsForCall(0)
			Expect(groupID).To(Equal("sg-1"))
			Expect(direction).To(Equal(security_groups.DirectionEgress))
			Expect(permission).To(Equal(security_groups.PermissionAllow))
			Expect(source).To(Equal("10.0.0.0/24"))
			Expect(protocol).To(Equal(security_groups.ProtocolUDP))
			Expect(target).To(Equal(security_groups.GlobalTarget("sg-1")))
			Expect(startPort).To(Equal(53))
			Expect(endPort).To(Equal(53))

			name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
			Expect(name).To(Equal("SecurityGroupRevokeMatchingSuccessTime"))
		})
	})

	Describe("Get", func() {
		BeforeEach(func() {
			fakeManager.GetReturns(&security_groups.SecurityGroup{ID: "sg-1"}, nil)
		})

		It("returns the group and emits a success duration", func() {
			group, err := metricsWrapper.Get("sg-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(group).To(Equal(&security_groups.SecurityGroup{ID: "sg-1"}))

			name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
			Expect(name).To(Equal("SecurityGroupGetSuccessTime"))
		})
	})

	Describe("Rules", func() {
		BeforeEach(func() {
			fakeManager.RulesReturns([]security_groups.Rule{{ID: "rule-1"}}, nil)
		})

		It("returns the rules and emits a success duration", func() {
			rules, err := metricsWrapper.Rules("sg-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(rules).To(Equal([]security_groups.Rule{{ID: "rule-1"}}))

			name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
			Expect(name).To(Equal("SecurityGroupRulesSuccessTime"))
		})
	})

	Describe("List", func() {
		Context("when listing fails", func() {
			BeforeEach(func() {
				fakeManager.ListReturns(nil, errors.New("banana"))
			})

			It("emits an error counter and an error duration", func() {
				_, err := metricsWrapper.List()
				Expect(err).To(MatchError("banana"))

				Expect(fakeMetricsSender.IncrementCounterArgsForCall(0)).To(Equal("SecurityGroupListError"))
				name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
				Expect(name).To(Equal("SecurityGroupListErrorTime"))
			})
		})
	})

	Describe("ListStatus", func() {
		BeforeEach(func() {
			fakeManager.ListStatusReturns([]security_groups.GroupStatus{{ID: "sg-1", Available: true}}, nil)
		})

		It("returns the statuses and emits a success duration", func() {
			statuses, err := metricsWrapper.ListStatus()
			Expect(err).NotTo(HaveOccurred())
			Expect(statuses).To(Equal([]security_groups.GroupStatus{{ID: "sg-1", Available: true}}))

			name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
			Expect(name).To(Equal("SecurityGroupListStatusSuccessTime"))
		})
	})

	Describe("ListForVM", func() {
		BeforeEach(func() {
			fakeManager.ListForVMReturns([]string{"sg-1", "sg-2"}, nil)
		})

		It("returns the group ids and emits a success duration", func() {
			groupIDs, err := metricsWrapper.ListForVM("vm-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(groupIDs).To(Equal([]string{"sg-1", "sg-2"}))

			Expect(fakeManager.ListForVMArgsForCall(0)).To(Equal("vm-1"))
			name, _ := fakeMetricsSender.SendDurationArgsForCall(0)
			Expect(name).To(Equal("SecurityGroupListForVMSuccessTime"))
		})
	})
})
