package payment

import (
	"context"
	"errors"
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/evening-academy/academy-management/internal"
	"github.com/evening-academy/academy-management/internal/auth"
	paymentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/payment"
	profileDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/profile"
)

var _ = Describe("Payment Service", func() {
	var (
		repo        *mockRepo
		gateway     *fakeGateway
		profiles    *mockProfiles
		enrollments *mockEnrollments
		service     *Service
		user        *auth.User
		ctx         context.Context
	)

	courseA := "course-a"
	courseB := "course-b"

	newCheckout := func(items ...CheckoutItem) CheckoutRequest {
		return CheckoutRequest{Items: items}
	}

	BeforeEach(func() {
		ctx = context.Background()
		repo = &mockRepo{}
		gateway = &fakeGateway{sessionStatus: SessionStatusPaid}
		profiles = &mockProfiles{
			profile: &profileDatamodel.Profile{
				ID:    "student-1",
				Name:  "Sam Student",
				Email: "sam@academy.test",
				Role:  profileDatamodel.RoleStudent,
			},
		}
		enrollments = &mockEnrollments{}
		user = &auth.User{ID: "student-1", Email: "sam@academy.test", Role: profileDatamodel.RoleStudent}

		cfg := apperrors.PaymentConfig{
			GatewayAPIKey: "sk_test",
			Currency:      "usd",
			SuccessURL:    "http://localhost/payment/success?session_id={CHECKOUT_SESSION_ID}",
			CancelURL:     "http://localhost/payment",
		}
		lg := slog.New(slog.NewTextHandler(io.Discard, nil))
		service = NewService(repo, gateway, profiles, enrollments, nil, cfg, lg)
	})

	Describe("Checkout", func() {
		It("creates one pending ledger row per item, all sharing the session id", func() {
			resp, err := service.Checkout(ctx, user, newCheckout(
				CheckoutItem{Name: "Registration", Description: "Registration fee", Amount: 5000, Type: paymentDatamodel.TypeRegistration},
				CheckoutItem{Name: "CS101", Description: "Course fee", Amount: 12000, Type: paymentDatamodel.TypeCourse, CourseID: &courseA},
			))

			Expect(err).NotTo(HaveOccurred())
			Expect(resp.URL).To(ContainSubstring("checkout.example.com"))
			Expect(repo.rows).To(HaveLen(2))
			for _, row := range repo.rows {
				Expect(row.TransactionID).To(Equal("cs_test_1"))
				Expect(row.Status).To(Equal(paymentDatamodel.StatusPending))
				Expect(row.UserID).To(Equal("student-1"))
			}
		})

		It("creates and caches a gateway customer on first checkout only", func() {
			_, err := service.Checkout(ctx, user, newCheckout(
				CheckoutItem{Name: "Registration", Amount: 5000, Type: paymentDatamodel.TypeRegistration},
			))
			Expect(err).NotTo(HaveOccurred())
			Expect(gateway.createCustomerCalls).To(Equal(1))
			Expect(profiles.savedCustomerID).To(Equal("cus_1"))

			_, err = service.Checkout(ctx, user, newCheckout(
				CheckoutItem{Name: "Registration", Amount: 5000, Type: paymentDatamodel.TypeRegistration},
			))
			Expect(err).NotTo(HaveOccurred())
			Expect(gateway.createCustomerCalls).To(Equal(1))
		})

		It("keeps the session id placeholder in the success URL", func() {
			_, err := service.Checkout(ctx, user, newCheckout(
				CheckoutItem{Name: "CS101", Amount: 12000, Type: paymentDatamodel.TypeCourse, CourseID: &courseA},
			))
			Expect(err).NotTo(HaveOccurred())
			Expect(gateway.lastSuccessURL).To(ContainSubstring("{CHECKOUT_SESSION_ID}"))
			Expect(gateway.lastSuccessURL).To(ContainSubstring("course_ids=course-a"))
		})

		It("rejects an empty item list", func() {
			_, err := service.Checkout(ctx, user, newCheckout())
			Expect(err).To(MatchError(apperrors.ErrInvalidItems))
			Expect(gateway.createSessionCalls).To(BeZero())
		})

		It("rejects course items without a course id", func() {
			_, err := service.Checkout(ctx, user, newCheckout(
				CheckoutItem{Name: "CS101", Amount: 12000, Type: paymentDatamodel.TypeCourse},
			))
			appErr, ok := apperrors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("surfaces a ledger insert failure after the session was created", func() {
			repo.createErr = errors.New("connection reset")

			_, err := service.Checkout(ctx, user, newCheckout(
				CheckoutItem{Name: "Registration", Amount: 5000, Type: paymentDatamodel.TypeRegistration},
			))

			Expect(err).To(HaveOccurred())
			// The gateway session exists with no rows behind it.
			Expect(gateway.createSessionCalls).To(Equal(1))
			Expect(repo.rows).To(BeEmpty())
		})
	})

	Describe("Verify", func() {
		seedLedger := func(sessionID string, items ...*paymentDatamodel.Payment) {
			for _, item := range items {
				item.TransactionID = sessionID
				if item.Status == "" {
					item.Status = paymentDatamodel.StatusPending
				}
				repo.rows = append(repo.rows, item)
			}
		}

		It("requires a session id", func() {
			_, err := service.Verify(ctx, user, "")
			Expect(err).To(MatchError(apperrors.ErrMissingSessionID))
			Expect(gateway.retrieveCalls).To(BeZero())
		})

		It("refuses an unpaid session and reports the gateway status, touching nothing", func() {
			gateway.sessionStatus = SessionStatusUnpaid
			seedLedger("cs_1", &paymentDatamodel.Payment{ID: "p1", UserID: "student-1", PaymentType: paymentDatamodel.TypeRegistration})

			_, err := service.Verify(ctx, user, "cs_1")

			appErr, ok := apperrors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(apperrors.ErrCodePaymentIncomplete))
			Expect(appErr.Details).To(HaveKeyWithValue("status", SessionStatusUnpaid))

			Expect(repo.rows[0].Status).To(Equal(paymentDatamodel.StatusPending))
			Expect(profiles.setFeesPaidCalls).To(BeZero())
		})

		It("returns not found when the session's rows belong to another user", func() {
			seedLedger("cs_1", &paymentDatamodel.Payment{ID: "p1", UserID: "someone-else", PaymentType: paymentDatamodel.TypeRegistration})

			_, err := service.Verify(ctx, user, "cs_1")
			Expect(err).To(MatchError(apperrors.ErrPaymentNotFound))
		})

		It("returns not found for a paid session with no ledger rows", func() {
			_, err := service.Verify(ctx, user, "cs_orphan")
			Expect(err).To(MatchError(apperrors.ErrPaymentNotFound))
		})

		It("completes a registration payment and marks fees paid", func() {
			seedLedger("cs_1", &paymentDatamodel.Payment{ID: "p1", UserID: "student-1", Amount: 5000, PaymentType: paymentDatamodel.TypeRegistration})

			result, err := service.Verify(ctx, user, "cs_1")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Success).To(BeTrue())
			Expect(result.Status).To(Equal(paymentDatamodel.StatusCompleted))
			Expect(repo.rows[0].Status).To(Equal(paymentDatamodel.StatusCompleted))
			Expect(profiles.feesPaid).To(BeTrue())
		})

		It("activates one enrollment per purchased course", func() {
			seedLedger("cs_1",
				&paymentDatamodel.Payment{ID: "p1", UserID: "student-1", Amount: 12000, PaymentType: paymentDatamodel.TypeCourse, CourseID: &courseA},
				&paymentDatamodel.Payment{ID: "p2", UserID: "student-1", Amount: 9000, PaymentType: paymentDatamodel.TypeCourse, CourseID: &courseB},
			)

			result, err := service.Verify(ctx, user, "cs_1")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.EnrolledCourses).To(ConsistOf(courseA, courseB))
			Expect(enrollments.enrolled).To(HaveKey(courseA))
			Expect(enrollments.enrolled).To(HaveKey(courseB))
		})

		It("is idempotent across repeated verification", func() {
			seedLedger("cs_1", &paymentDatamodel.Payment{ID: "p1", UserID: "student-1", Amount: 12000, PaymentType: paymentDatamodel.TypeCourse, CourseID: &courseA})

			first, err := service.Verify(ctx, user, "cs_1")
			Expect(err).NotTo(HaveOccurred())

			second, err := service.Verify(ctx, user, "cs_1")
			Expect(err).NotTo(HaveOccurred())

			Expect(second.Success).To(Equal(first.Success))
			Expect(second.Status).To(Equal(first.Status))
			// Settled rows are not flipped again.
			Expect(repo.markCompletedCalls).To(Equal(1))
		})

		It("fails when the gateway cannot be reached", func() {
			gateway.retrieveErr = errors.New("dial tcp: timeout")

			_, err := service.Verify(ctx, user, "cs_1")
			appErr, ok := apperrors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(502))
		})
	})

	Describe("Reconcile", func() {
		It("fails terminally without a session id and never contacts the gateway", func() {
			result := service.Reconcile(ctx, user, "")

			Expect(result.State).To(Equal(StateFailed))
			Expect(result.Error).To(ContainSubstring("No session ID"))
			Expect(gateway.retrieveCalls).To(BeZero())
		})

		It("lands on success after a good verification", func() {
			repo.rows = append(repo.rows, &paymentDatamodel.Payment{
				ID: "p1", UserID: "student-1", TransactionID: "cs_1",
				Status: paymentDatamodel.StatusPending, PaymentType: paymentDatamodel.TypeCourse, CourseID: &courseA,
			})

			result := service.Reconcile(ctx, user, "cs_1")

			Expect(result.State).To(Equal(StateSuccess))
			Expect(result.EnrolledCount).To(Equal(1))
		})

		It("lands on failed with the verification error message", func() {
			gateway.sessionStatus = SessionStatusUnpaid

			result := service.Reconcile(ctx, user, "cs_1")

			Expect(result.State).To(Equal(StateFailed))
			Expect(result.Error).NotTo(BeEmpty())
		})
	})
})
