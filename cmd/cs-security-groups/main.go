package main

import (
	"crypto/tls"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"code.cloudfoundry.org/cf-networking-helpers/metrics"
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3/lagerflags"
	"github.com/cloudfoundry/dropsonde"

	"github.com/daniellemayne/dasein-cloud-cloudstack/config"
	"github.com/daniellemayne/dasein-cloud-cloudstack/cs_client"
	"github.com/daniellemayne/dasein-cloud-cloudstack/security_groups"
)

const (
	jobPrefix       = "cs-security-groups"
	dropsondeOrigin = "cs-security-groups"
)

var logPrefix = "cloudstack"

func main() {
	configFilePath := flag.String("config-file", "", "path to config file")
	flag.Parse()

	conf, err := config.New(*configFilePath)
	if err != nil {
		log.Fatalf("%s.%s: could not read config file: %s", logPrefix, jobPrefix, err)
	}

	if conf.LogPrefix != "" {
		logPrefix = conf.LogPrefix
	}
	loggerConfig := lagerflags.DefaultLagerConfig()
	if conf.LogLevel != "" {
		loggerConfig.LogLevel = conf.LogLevel
	}
	logger, _ := lagerflags.NewFromConfig(fmt.Sprintf("%s.%s", logPrefix, jobPrefix), loggerConfig)

	if conf.MetronAddress != "" {
		if err := dropsonde.Initialize(conf.MetronAddress, dropsondeOrigin); err != nil {
			log.Fatalf("%s.%s: initializing dropsonde: %s", logPrefix, jobPrefix, err)
		}
	}

	httpClient := &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: conf.SkipSSLValidation,
			},
		},
	}

	client := &cs_client.Client{
		BaseURL:         conf.APIURL,
		APIKey:          conf.APIKey,
		SecretKey:       conf.SecretKey,
		HTTPClient:      httpClient,
		Logger:          logger.Session("cs-client"),
		Clock:           clock.NewClock(),
		JobPollInterval: time.Duration(conf.JobPollIntervalSeconds) * time.Second,
		JobTimeout:      time.Duration(conf.JobTimeoutSeconds) * time.Second,
	}

	metricsSender := &metrics.MetricsSender{
		Logger: logger.Session("time-metric-emitter"),
	}

	manager := security_groups.SecurityGroupManager(&security_groups.MetricsWrapper{
		Manager: &security_groups.Manager{
			Client:   client,
			Logger:   logger.Session("security-groups"),
			RegionID: conf.RegionID,
		},
		MetricsSender: metricsSender,
	})

	if err := run(manager, flag.Args()); err != nil {
		log.Fatalf("%s.%s: %s", logPrefix, jobPrefix, err)
	}
}

func run(manager security_groups.SecurityGroupManager, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: cs-security-groups --config-file <path> <list|list-status|list-for-vm|get|rules|create|delete|authorize|revoke|revoke-matching> [args]")
	}

	switch args[0] {
	case "list":
		groups, err := manager.List()
		if err != nil {
			return err
		}
		return print(groups)
	case "list-status":
		statuses, err := manager.ListStatus()
		if err != nil {
			return err
		}
		return print(statuses)
	case "list-for-vm":
		if len(args) != 2 {
			return fmt.Errorf("usage: list-for-vm <vm-id>")
		}
		groupIDs, err := manager.ListForVM(args[1])
		if err != nil {
			return err
		}
		return print(groupIDs)
	case "get":
		if len(args) != 2 {
			return fmt.Errorf("usage: get <group-id>")
		}
		group, err := manager.Get(args[1])
		if err != nil {
			return err
		}
		if group == nil {
			return fmt.Errorf("security group %s not found", args[1])
		}
		return print(group)
	case "rules":
		if len(args) != 2 {
			return fmt.Errorf("usage: rules <group-id>")
		}
		rules, err := manager.Rules(args[1])
		if err != nil {
			return err
		}
		return print(rules)
	case "create":
		if len(args) != 3 {
			return fmt.Errorf("usage: create <name> <description>")
		}
		groupID, err := manager.Create(security_groups.CreateOptions{Name: args[1], Description: args[2]})
		if err != nil {
			return err
		}
		fmt.Println(groupID)
		return nil
	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: delete <group-id>")
		}
		return manager.Delete(args[1])
	case "authorize":
		if len(args) != 7 {
			return fmt.Errorf("usage: authorize <group-id> <ingress|egress> <protocol> <cidr> <start-port> <end-port>")
		}
		groupID := args[1]
		direction, err := parseDirection(args[2])
		if err != nil {
			return err
		}
		startPort, endPort, err := parsePorts(args[5], args[6])
		if err != nil {
			return err
		}
		source := security_groups.CIDRTarget(args[4])
		destination := security_groups.GlobalTarget(groupID)
		if direction == security_groups.DirectionEgress {
			source, destination = destination, source
		}
		ruleID, err := manager.Authorize(groupID, direction, security_groups.PermissionAllow,
			source, security_groups.ParseProtocol(args[3]), destination, startPort, endPort)
		if err != nil {
			return err
		}
		fmt.Println(ruleID)
		return nil
	case "revoke":
		if len(args) != 2 {
			return fmt.Errorf("usage: revoke <rule-id>")
		}
		return manager.Revoke(args[1])
	case "revoke-matching":
		if len(args) != 7 {
			return fmt.Errorf("usage: revoke-matching <group-id> <ingress|egress> <protocol> <cidr> <start-port> <end-port>")
		}
		direction, err := parseDirection(args[2])
		if err != nil {
			return err
		}
		startPort, endPort, err := parsePorts(args[5], args[6])
		if err != nil {
			return err
		}
		return manager.RevokeMatching(args[1], direction, security_groups.PermissionAllow,
			args[4], security_groups.ParseProtocol(args[3]), security_groups.GlobalTarget(args[1]),
			startPort, endPort)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func parseDirection(value string) (security_groups.Direction, error) {
	switch value {
	case "ingress":
		return security_groups.DirectionIngress, nil
	case "egress":
		return security_groups.DirectionEgress, nil
	}
	return "", fmt.Errorf("unknown direction %q", value)
}

func parsePorts(start, end string) (int, int, error) {
	startPort, err := strconv.Atoi(start)
	if err != nil {
		return 0, 0, fmt.Errorf("parse start port: %s", err)
	}
	endPort, err := strconv.Atoi(end)
	if err != nil {
		return 0, 0, fmt.Errorf("parse end port: %s", err)
	}
	return startPort, endPort, nil
}

func print(value interface{}) error {
	return json.NewEncoder(os.Stdout).Encode(value)
}
