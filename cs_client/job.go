package cs_client

import (
	"fmt"
	"time"

	"code.cloudfoundry.org/lager/v3"
)

const (
	defaultJobPollInterval = 2 * time.Second
	defaultJobTimeout      = 10 * time.Minute

	jobStatusInProgress = "0"
	jobStatusSucceeded  = "1"
	jobStatusFailed     = "2"
)

// WaitForJob blocks until the async job referenced by doc completes and
// returns the job's result document. A doc with no job reference is a
// synchronous response and is returned unchanged.
func (c *Client) WaitForJob(doc Document) (Document, error) {
	jobID, ok := doc.FirstValue("jobid")
	if !ok {
		return doc, nil
	}

	logger := c.Logger.Session("wait-for-job", lager.Data{"job-id": jobID})
	deadline := c.Clock.Now().Add(c.jobTimeout())

	for {
		result, err := c.Do("queryAsyncJobResult", []Param{{Key: "jobid", Value: jobID}})
		if err != nil {
			return Document{}, fmt.Errorf("query job %s: %s", jobID, err)
		}

		status, _ := result.FirstValue("jobstatus")
		switch status {
		case jobStatusSucceeded:
			logger.Debug("job-complete")
			return result, nil
		case jobStatusFailed:
			text, _ := result.FirstValue("errortext")
			return Document{}, fmt.Errorf("job %s failed: %s", jobID, text)
		}

		if c.Clock.Now().After(deadline) {
			return Document{}, fmt.Errorf("timed out waiting for job %s", jobID)
		}
		c.Clock.Sleep(c.jobPollInterval())
	}
}

func (c *Client) jobPollInterval() time.Duration {
	if c.JobPollInterval > 0 {
		return c.JobPollInterval
	}
	return defaultJobPollInterval
}

func (c *Client) jobTimeout() time.Duration {
	if c.JobTimeout > 0 {
		return c.JobTimeout
	}
	return defaultJobTimeout
}
