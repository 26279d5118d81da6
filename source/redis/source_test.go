package redis

import (
	"context"
	"fmt"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Source", func() {
	Describe("New", func() {
		var config Config

		AfterEach(func() {
			config = Config{}
		})

		Context("When hosts list empty", func() {
			It("Returns error", func() {
				config.ListKeys = []string{"asdf", "qwerty"}

				source, err := New(&config)

				Expect(*source).To(BeZero())
				Expect(err).To(HaveOccurred())
				Expect(err).To(Equal(fmt.Errorf("hosts list cannot be empty")))
			})
		})

		Context("When list keys empty", func() {
			It("Returns error", func() {
				config.Hosts = []string{"host:6379"}

				source, err := New(&config)

				Expect(*source).To(BeZero())
				Expect(err).To(HaveOccurred())
				Expect(err).To(Equal(fmt.Errorf("list keys cannot be empty")))
			})
		})

		Context("When host is not reachable", func() {
			It("Returns error", func() {
				config.Hosts = []string{"host:6379"}
				config.ListKeys = []string{"asdf"}

				source, err := New(&config)

				Expect(*source).To(BeZero())
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("dial tcp"))
			})
		})

		Context("When all good", func() {
			var server *miniredis.Miniredis
			var err error

			BeforeEach(func() {
				server, err = miniredis.Run()

				if err != nil {
					Fail("miniredis failed to start")
				}

				config = Config{
					Hosts:    []string{server.Addr()},
					ListKeys: []string{"asdf"},
				}
			})

			AfterEach(func() {
				server.Close()
			})

			It("Properly setup redis source", func() {
				source, err := New(&config)

				Expect(err).ToNot(HaveOccurred())
				Expect(source.listKeys).To(Equal(config.ListKeys))

				pingRes, err := source.client.Ping(context.Background()).Result()
				Expect(err).ToNot(HaveOccurred())
				Expect(pingRes).To(Equal("PONG"))
			})
		})
	})

	Describe("Source receiver", func() {
		var (
			ctx context.Context

			listKeys = []string{"k1", "k2", "k3"}
			source   Source

			server *miniredis.Miniredis
			err    error
		)

		BeforeEach(func() {
			server, err = miniredis.Run()

			ctx = context.Background()

			if err != nil {
				Fail("miniredis failed to start")
			}

			source = Source{
				listKeys: listKeys,
				client: redis.NewRing(&redis.RingOptions{
					Addrs: map[string]string{
						"h1": server.Addr(),
					},
				}),
			}
		})

		AfterEach(func() {
			server.Close()
			source = Source{}
		})

		Describe("Kind()", func() {
			It("Return redis string", func() {
				Expect(source.Kind()).To(Equal("redis"))
			})
		})

		Describe("Load()", func() {
			It("Returns values from all lists", func() {
				for _, keyValue := range [][]string{
					{"k1", "2"},
					{"k1", "3"},
					{"k1", "3"},
					{"k2", "324"},
					{"k2", "1"},
					{"k3", "5"},
				} {
					_, err := server.Push(keyValue[0], keyValue[1])

					if err != nil {
						Fail("can't push entity to Redis")
					}
				}

				res, err := source.Load(ctx)

				Expect(err).ToNot(HaveOccurred())
				Expect(res).To(ConsistOf(uint64(2), uint64(3), uint64(3), uint64(324), uint64(1), uint64(5)))
			})

			It("When keys are not existing returns empty sample", func() {
				res, err := source.Load(ctx)

				Expect(res).To(BeEmpty())
				Expect(err).ToNot(HaveOccurred())
			})

			It("When list holds non numeric value returns error", func() {
				if _, err := server.Push("k2", "abc"); err != nil {
					Fail("can't push entity to Redis")
				}

				res, err := source.Load(ctx)

				Expect(res).To(BeNil())
				Expect(err).To(MatchError(`list k2: value is not a non-negative integer: "abc"`))
			})
		})
	})
})
