package k8s

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

var _ = Describe("Service with fake client", func() {
	var (
		namespace string
		ctx       context.Context
	)

	BeforeEach(func() {
		namespace = "ugabuga"
		ctx = context.TODO()
	})

	Describe("GetConfigMap()", func() {
		var configMap *corev1.ConfigMap

		It("when config map in given namespace is present it properly returns it", func() {
			configMap = &corev1.ConfigMap{
				ObjectMeta: metav1.ObjectMeta{
					Name:      "samplestats",
					Namespace: namespace,
				},
				Data: map[string]string{"values": "2 3 4"},
			}

			svc := Service{
				Client:    fake.NewSimpleClientset(configMap),
				Namespace: namespace,
			}

			res, err := svc.GetConfigMap(ctx, "samplestats")

			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal(configMap))
		})

		It("when config map lives in other namespace", func() {
			configMap = &corev1.ConfigMap{
				ObjectMeta: metav1.ObjectMeta{
					Name:      "samplestats",
					Namespace: "some-other-namespace",
				},
			}

			svc := Service{
				Client:    fake.NewSimpleClientset(configMap),
				Namespace: namespace,
			}

			_, err := svc.GetConfigMap(ctx, "samplestats")

			Expect(apierrors.IsNotFound(err)).To(BeTrue())
		})

		It("when config map is not found", func() {
			svc := Service{
				Client:    fake.NewSimpleClientset(),
				Namespace: namespace,
			}

			_, err := svc.GetConfigMap(ctx, "samplestats")

			Expect(err.Error()).To(Equal("configmaps \"samplestats\" not found"))
		})
	})
})
