package auth

import (
	"context"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/hrms-client/internal"
	usermodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/user"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock Repository for testing
type mockRepository struct {
	usersByEmail map[string]*usermodel.User
	usersByID    map[string]*usermodel.User
}

func newMockRepository() *mockRepository {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.MinCost)

	active := &usermodel.User{
		ID:           "user-1",
		Email:        "asha@example.com",
		Name:         "Asha",
		PasswordHash: string(hash),
		Role:         "employee",
		EmpNo:        "EMP001",
		IsActive:     true,
	}
	inactive := &usermodel.User{
		ID:           "user-2",
		Email:        "gone@example.com",
		Name:         "Former Employee",
		PasswordHash: string(hash),
		Role:         "employee",
		IsActive:     false,
	}

	return &mockRepository{
		usersByEmail: map[string]*usermodel.User{
			active.Email:   active,
			inactive.Email: inactive,
		},
		usersByID: map[string]*usermodel.User{
			active.ID:   active,
			inactive.ID: inactive,
		},
	}
}

func (m *mockRepository) GetByEmail(_ context.Context, email string) (*usermodel.User, error) {
	if u, ok := m.usersByEmail[email]; ok {
		return u, nil
	}
	return nil, internal.ErrUserNotFound
}

func (m *mockRepository) GetByID(_ context.Context, id string) (*usermodel.User, error) {
	if u, ok := m.usersByID[id]; ok {
		return u, nil
	}
	return nil, internal.ErrUserNotFound
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *Service
		mockRepo *mockRepository
		tokenGen *JWTTokenGenerator
		ctx      context.Context
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockRepository()
		tokenGen = NewJWTTokenGenerator("test-secret", time.Hour)
		service = NewService(mockRepo, tokenGen, bcrypt.MinCost)
		ctx = context.Background()
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.Context("when credentials are valid", func() {
			ginkgo.It("should return the user and a signed token", func() {
				// Given
				dto := LoginDTO{Email: "asha@example.com", Password: "correct_password"}

				// When
				user, token, err := service.Authenticate(ctx, dto)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(user.ID).To(gomega.Equal("user-1"))
				gomega.Expect(token).ToNot(gomega.BeEmpty())
			})

			ginkgo.It("should issue a token that validates back to the same user", func() {
				// Given
				dto := LoginDTO{Email: "asha@example.com", Password: "correct_password"}

				// When
				_, token, err := service.Authenticate(ctx, dto)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				claims, err := service.ValidateAccessToken(token)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims.UserID).To(gomega.Equal("user-1"))
				gomega.Expect(claims.EmpNo).To(gomega.Equal("EMP001"))
			})
		})

		ginkgo.Context("when the password is wrong", func() {
			ginkgo.It("should return invalid credentials", func() {
				dto := LoginDTO{Email: "asha@example.com", Password: "wrong_password"}

				_, _, err := service.Authenticate(ctx, dto)

				gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidCredentials))
			})
		})

		ginkgo.Context("when the user does not exist", func() {
			ginkgo.It("should return invalid credentials, not a not-found leak", func() {
				dto := LoginDTO{Email: "nobody@example.com", Password: "correct_password"}

				_, _, err := service.Authenticate(ctx, dto)

				gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidCredentials))
			})
		})

		ginkgo.Context("when the user is inactive", func() {
			ginkgo.It("should refuse the login", func() {
				dto := LoginDTO{Email: "gone@example.com", Password: "correct_password"}

				_, _, err := service.Authenticate(ctx, dto)

				gomega.Expect(err).To(gomega.Equal(internal.ErrUserInactive))
			})
		})

		ginkgo.Context("when fields are missing", func() {
			ginkgo.It("should fail validation before touching the repository", func() {
				dto := LoginDTO{Email: "", Password: ""}

				_, _, err := service.Authenticate(ctx, dto)

				gomega.Expect(err).To(gomega.HaveOccurred())
				appErr, ok := internal.IsAppError(err)
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeValidation))
			})
		})
	})

	ginkgo.Describe("ValidateAccessToken", func() {
		ginkgo.It("should reject garbage tokens", func() {
			_, err := service.ValidateAccessToken("not-a-token")

			gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidToken))
		})

		ginkgo.It("should reject expired tokens", func() {
			// Given a generator whose tokens are already expired
			expiredGen := NewJWTTokenGenerator("test-secret", time.Hour)
			expiredGen.TokenTTL = -time.Minute
			user := &usermodel.User{ID: "user-1"}
			token, err := expiredGen.GenerateAccessToken(user)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// When
			_, err = service.ValidateAccessToken(token)

			// Then
			gomega.Expect(err).To(gomega.Equal(internal.ErrTokenExpired))
		})

		ginkgo.It("should reject tokens signed with a different secret", func() {
			otherGen := NewJWTTokenGenerator("other-secret", time.Hour)
			user := &usermodel.User{ID: "user-1"}
			token, err := otherGen.GenerateAccessToken(user)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.ValidateAccessToken(token)

			gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidToken))
		})
	})

	ginkgo.Describe("HashPassword", func() {
		ginkgo.It("should produce a hash that verifies", func() {
			hash, err := service.HashPassword("s3cret")

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret"))).To(gomega.Succeed())
		})
	})
})
