package security_groups

import (
	"time"
)

//counterfeiter:generate -o fakes/metrics_sender.go --fake-name MetricsSender . metricsSender
type metricsSender interface {
	IncrementCounter(string)
	SendDuration(string, time.Duration)
}

// MetricsWrapper emits a duration metric per operation and an error
// counter per failed operation, in front of any SecurityGroupManager.
type MetricsWrapper struct {
	Manager       SecurityGroupManager
	MetricsSender metricsSender
}

func (mw *MetricsWrapper) Create(options CreateOptions) (string, error) {
	startTime := time.Now()
	groupID, err := mw.Manager.Create(options)
	mw.emit("SecurityGroupCreate", time.Now().Sub(startTime), err)
	return groupID, err
}

func (mw *MetricsWrapper) Delete(groupID string) error {
	startTime := time.Now()
	err := mw.Manager.Delete(groupID)
	mw.emit("SecurityGroupDelete", time.Now().Sub(startTime), err)
	return err
}

func (mw *MetricsWrapper) Authorize(groupID string, direction Direction, permission Permission, source RuleTarget, protocol Protocol, destination RuleTarget, startPort, endPort int) (string, error) {
	startTime := time.Now()
	ruleID, err := mw.Manager.Authorize(groupID, direction, permission, source, protocol, destination, startPort, endPort)
	mw.emit("SecurityGroupAuthorize", time.Now().Sub(startTime), err)
	return ruleID, err
}

func (mw *MetricsWrapper) Revoke(ruleID string) error {
	startTime := time.Now()
	err := mw.Manager.Revoke(ruleID)
	mw.emit("SecurityGroupRevoke", time.Now().Sub(startTime), err)
	return err
}

func (mw *MetricsWrapper) RevokeMatching(groupID string, direction Direction, permission Permission, source string, protocol Protocol, target RuleTarget, startPort, endPort int) error {
	startTime := time.Now()
	err := mw.Manager.RevokeMatching(groupID, direction, permission, source, protocol, target, startPort, endPort)
	mw.emit("SecurityGroupRevokeMatching", time.Now().Sub(startTime), err)
	return err
}

func (mw *MetricsWrapper) Get(groupID string) (*SecurityGroup, error) {
	startTime := time.Now()
	group, err := mw.Manager.Get(groupID)
	mw.emit("SecurityGroupGet", time.Now().Sub(startTime), err)
	return group, err
}

func (mw *MetricsWrapper) Rules(groupID string) ([]Rule, error) {
	startTime := time.Now()
	rules, err := mw.Manager.Rules(groupID)
	mw.emit("SecurityGroupRules", time.Now().Sub(startTime), err)
	return rules, err
}

func (mw *MetricsWrapper) List() ([]SecurityGroup, error) {
	startTime := time.Now()
	groups, err := mw.Manager.List()
	mw.emit("SecurityGroupList", time.Now().Sub(startTime), err)
	return groups, err
}

func (mw *MetricsWrapper) ListStatus() ([]GroupStatus, error) {
	startTime := time.Now()
	statuses, err := mw.Manager.ListStatus()
	mw.emit("SecurityGroupListStatus", time.Now().Sub(startTime), err)
	return statuses, err
}

func (mw *MetricsWrapper) ListForVM(vmID string) ([]string, error) {
	startTime := time.Now()
	groupIDs, err := mw.Manager.ListForVM(vmID)
	mw.emit("SecurityGroupListForVM", time.Now().Sub(startTime), err)
	return groupIDs, err
}

func (mw *MetricsWrapper) emit(name string, duration time.Duration, err error) {
	if err != nil {
		mw.MetricsSender.IncrementCounter(name + "Error")
		mw.MetricsSender.SendDuration(name+"ErrorTime", duration)
	} else {
		mw.MetricsSender.SendDuration(name+"SuccessTime", duration)
	}
}
