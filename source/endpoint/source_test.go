package endpoint

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/h2non/gock.v1"
)

var _ = Describe("Source", func() {
	Describe("New()", func() {
		It("Returns error when no url provided", func() {
			source, err := New(&Config{})

			Expect(*source).To(BeZero())
			Expect(err).To(Equal(ErrNoURLSpecified))
		})

		It("Applies default timeout", func() {
			source, err := New(&Config{URL: "http://stats.local/samples"})

			Expect(err).ToNot(HaveOccurred())
			Expect(source.timeout).To(Equal(defaultTimeout))
		})
	})

	Describe("Load()", func() {
		var (
			source Source
			url    string

			ctx context.Context
		)

		BeforeEach(func() {
			ctx = context.Background()

			url = "http://stats.local/samples"

			source = Source{
				url:     url,
				timeout: time.Second,
			}
		})

		AfterEach(func() {
			Expect(gock.IsDone()).To(BeTrue())
			gock.Off()
		})

		Context("Timeout test", func() {
			var srv *httptest.Server

			BeforeEach(func() {
				// Gock cannot simulate such a scenario
				// So we need to create a fake server
				gock.Off()

				srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					time.Sleep(50 * time.Millisecond)
					w.WriteHeader(http.StatusOK)
					w.Write([]byte("10"))
				}))
			})

			AfterEach(func() {
				srv.Close()
			})

			It("Respects configured timeout", func() {
				source.url = srv.URL
				source.timeout = 25 * time.Millisecond

				res, err := source.Load(ctx)

				Expect(res).To(BeNil())
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("context deadline exceeded"))
			})
		})

		Context("When all good", func() {
			It("Returns parsed sample", func() {
				gock.New("http://stats.local").
					Get("/samples").
					Reply(200).
					BodyString("2\n3\n4\n324\n1\n5,2,4,3,3\n")

				res, err := source.Load(ctx)

				Expect(err).ToNot(HaveOccurred())
				Expect(res).To(Equal([]uint64{2, 3, 4, 324, 1, 5, 2, 4, 3, 3}))
			})
		})

		Context("When not ok", func() {
			Context("When failed request", func() {
				It("returns nil and error", func() {
					respErr := errors.New("unreachable")
					gock.New("http://stats.local").
						Get("/samples").
						ReplyError(respErr)

					res, err := source.Load(ctx)

					Expect(res).To(BeNil())
					Expect(err).To(Equal(errors.New("failed to get http://stats.local/samples: Get \"http://stats.local/samples\": unreachable")))
				})
			})

			Context("When not 200 response", func() {
				It("returns nil and error", func() {
					gock.New("http://stats.local").
						Get("/samples").
						Reply(500).
						BodyString("internal server error")

					res, err := source.Load(ctx)

					Expect(res).To(BeNil())
					Expect(err).To(Equal(errors.New("expected 200 response, got 500")))
				})
			})

			Context("When not number in response", func() {
				It("returns nil and error", func() {
					gock.New("http://stats.local").
						Get("/samples").
						Reply(200).
						BodyString("1 asdf")

					res, err := source.Load(ctx)

					Expect(res).To(BeNil())
					Expect(err).To(MatchError(`value is not a non-negative integer: "asdf"`))
				})
			})
		})
	})
})
