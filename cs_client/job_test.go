package cs_client_test

import (
	"net/http"
	"sync/atomic"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/daniellemayne/dasein-cloud-cloudstack/cs_client"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

const authorizeResponse = `<authorizesecuritygroupingressresponse cloud-stack-version="4.2.0"><jobid>job-1</jobid></authorizesecuritygroupingressresponse>`

const jobPending = `<queryasyncjobresultresponse><jobid>job-1</jobid><jobstatus>0</jobstatus></queryasyncjobresultresponse>`

const jobDone = `<queryasyncjobresultresponse><jobid>job-1</jobid><jobstatus>1</jobstatus><jobresult><securitygroup><id>sg-1</id></securitygroup></jobresult></queryasyncjobresultresponse>`

const jobFailed = `<queryasyncjobresultresponse><jobid>job-1</jobid><jobstatus>2</jobstatus><jobresult><errorcode>530</errorcode><errortext>rule conflicts with an existing rule</errortext></jobresult></queryasyncjobresultresponse>`

var _ = Describe("WaitForJob", func() {
	var (
		server *ghttp.Server
		client *cs_client.Client
		doc    cs_client.Document
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		client = &cs_client.Client{
			BaseURL:         server.URL() + "/client/api",
			APIKey:          "my-api-key",
			SecretKey:       "my-secret-key",
			HTTPClient:      http.DefaultClient,
			Logger:          lagertest.NewTestLogger("test"),
			Clock:           clock.NewClock(),
			JobPollInterval: time.Millisecond,
			JobTimeout:      time.Second,
		}

		var err error
		doc, err = cs_client.ParseDocument([]byte(authorizeResponse))
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		server.Close()
	})

	Context("when the document references no job", func() {
		It("returns the document unchanged without polling", func() {
			syncDoc, err := cs_client.ParseDocument([]byte(listResponse))
			Expect(err).NotTo(HaveOccurred())

			result, err := client.WaitForJob(syncDoc)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(syncDoc))
			Expect(server.ReceivedRequests()).To(BeEmpty())
		})
	})

	Context("when the job completes after a pending poll", func() {
		BeforeEach(func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", "/client/api"),
					ghttp.RespondWith(http.StatusOK, jobPending),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", "/client/api"),
					ghttp.RespondWith(http.StatusOK, jobDone),
				),
			)
		})

		It("polls until done and returns the result document", func() {
			result, err := client.WaitForJob(doc)
			Expect(err).NotTo(HaveOccurred())
			Expect(server.ReceivedRequests()).To(HaveLen(2))

			id, ok := result.FirstValue("id")
			Expect(ok).To(BeTrue())
			Expect(id).To(Equal("sg-1"))

			query := server.ReceivedRequests()[0].URL.Query()
			Expect(query.Get("command")).To(Equal("queryAsyncJobResult"))
			Expect(query.Get("jobid")).To(Equal("job-1"))
		})
	})

	Context("when the job fails", func() {
		BeforeEach(func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusOK, jobFailed))
		})

		It("returns the provider's failure text", func() {
			_, err := client.WaitForJob(doc)
			Expect(err).To(MatchError("job job-1 failed: rule conflicts with an existing rule"))
		})
	})

	Context("when the job never completes", func() {
		var polls int32

		BeforeEach(func() {
			client.JobTimeout = 5 * time.Millisecond
			server.RouteToHandler("GET", "/client/api", func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&polls, 1)
				w.Write([]byte(jobPending))
			})
		})

		It("gives up at the deadline", func() {
			_, err := client.WaitForJob(doc)
			Expect(err).To(MatchError("timed out waiting for job job-1"))
			Expect(atomic.LoadInt32(&polls)).To(BeNumerically(">", 1))
		})
	})
})
