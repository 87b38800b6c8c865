package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestSession(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Session Module Suite")
}

// Mock storage for testing
type mockStorage struct {
	saved       []State
	loadResult  *State
	loadErr     error
	saveErr     error
	clearCalled bool
}

func (m *mockStorage) Load() (*State, error) {
	return m.loadResult, m.loadErr
}

func (m *mockStorage) Save(state State) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, state)
	return nil
}

func (m *mockStorage) Clear() error {
	m.clearCalled = true
	return nil
}

func strPtr(s string) *string { return &s }

var _ = ginkgo.Describe("Store", func() {
	var (
		storage *mockStorage
		store   *Store
		asha    User
	)

	ginkgo.BeforeEach(func() {
		storage = &mockStorage{}
		var err error
		store, err = NewStore(storage, nil)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		asha = User{
			ID:    "u-1",
			Name:  "Asha",
			Email: "asha@example.com",
			Role:  "employee",
			EmpNo: "EMP042",
			Department: &OrgUnit{
				ID:   "d-1",
				Name: "Engineering",
			},
		}
	})

	ginkgo.Describe("SetAuth", func() {
		ginkgo.It("should set user, token and authenticated flag together", func() {
			store.SetAuth(asha, "tok123")

			gomega.Expect(store.IsAuthenticated()).To(gomega.BeTrue())
			gomega.Expect(store.Token()).To(gomega.Equal("tok123"))
			gomega.Expect(store.User()).ToNot(gomega.BeNil())
			gomega.Expect(store.User().Name).To(gomega.Equal("Asha"))
		})

		ginkgo.It("should persist the new state synchronously", func() {
			store.SetAuth(asha, "tok123")

			gomega.Expect(storage.saved).To(gomega.HaveLen(1))
			gomega.Expect(storage.saved[0].Token).To(gomega.Equal("tok123"))
			gomega.Expect(storage.saved[0].IsAuthenticated).To(gomega.BeTrue())
		})
	})

	ginkgo.Describe("Logout", func() {
		ginkgo.It("should clear every session field", func() {
			store.SetAuth(asha, "tok123")
			store.SetEmployee(&Employee{ID: "e-1", EmpNo: "EMP042", EmployeeName: "Asha K"})

			store.Logout()

			snapshot := store.Snapshot()
			gomega.Expect(snapshot.User).To(gomega.BeNil())
			gomega.Expect(snapshot.Employee).To(gomega.BeNil())
			gomega.Expect(snapshot.Token).To(gomega.BeEmpty())
			gomega.Expect(snapshot.IsAuthenticated).To(gomega.BeFalse())
		})

		ginkgo.It("should be idempotent when already logged out", func() {
			store.Logout()
			store.Logout()

			gomega.Expect(store.IsAuthenticated()).To(gomega.BeFalse())
			// nothing to persist when nothing changed
			gomega.Expect(storage.saved).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("UpdateUser", func() {
		ginkgo.Context("when a user is set", func() {
			ginkgo.BeforeEach(func() {
				store.SetAuth(asha, "tok123")
			})

			ginkgo.It("should overwrite patched fields and keep the rest", func() {
				err := store.UpdateUser(UserPatch{Name: strPtr("New Name")})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				updated := store.User()
				gomega.Expect(updated.Name).To(gomega.Equal("New Name"))
				gomega.Expect(updated.Email).To(gomega.Equal("asha@example.com"))
				gomega.Expect(updated.Role).To(gomega.Equal("employee"))
				gomega.Expect(updated.EmpNo).To(gomega.Equal("EMP042"))
				gomega.Expect(updated.Department.Name).To(gomega.Equal("Engineering"))
			})

			ginkgo.It("should not touch token or authenticated flag", func() {
				err := store.UpdateUser(UserPatch{Email: strPtr("new@example.com")})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(store.Token()).To(gomega.Equal("tok123"))
				gomega.Expect(store.IsAuthenticated()).To(gomega.BeTrue())
			})
		})

		ginkgo.Context("when no user is set", func() {
			ginkgo.It("should return an error and not fabricate identity", func() {
				err := store.UpdateUser(UserPatch{Name: strPtr("Ghost")})

				gomega.Expect(err).To(gomega.MatchError(ErrNotAuthenticated))
				gomega.Expect(store.User()).To(gomega.BeNil())
			})
		})
	})

	ginkgo.Describe("SetEmployee", func() {
		ginkgo.It("should set enrichment independently of auth state", func() {
			store.SetEmployee(&Employee{ID: "e-1", EmpNo: "EMP042", EmployeeName: "Asha K"})

			gomega.Expect(store.Employee()).ToNot(gomega.BeNil())
			gomega.Expect(store.IsAuthenticated()).To(gomega.BeFalse())
		})

		ginkgo.It("should clear enrichment when given nil", func() {
			store.SetEmployee(&Employee{ID: "e-1", EmpNo: "EMP042", EmployeeName: "Asha K"})
			store.SetEmployee(nil)

			gomega.Expect(store.Employee()).To(gomega.BeNil())
		})
	})

	ginkgo.Describe("invariants", func() {
		ginkgo.It("should always hold token when authenticated", func() {
			checkInvariant := func() {
				snapshot := store.Snapshot()
				if snapshot.IsAuthenticated {
					gomega.Expect(snapshot.Token).ToNot(gomega.BeEmpty())
				}
			}

			checkInvariant()
			store.SetAuth(asha, "t1")
			checkInvariant()
			_ = store.UpdateUser(UserPatch{Name: strPtr("n")})
			checkInvariant()
			store.SetEmployee(nil)
			checkInvariant()
			store.Logout()
			checkInvariant()
		})

		ginkgo.It("should reject a persisted record that is authenticated without a token", func() {
			storage.loadResult = &State{
				User:            &asha,
				IsAuthenticated: true,
				Token:           "",
			}

			rehydrated, err := NewStore(storage, nil)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(rehydrated.IsAuthenticated()).To(gomega.BeFalse())
			gomega.Expect(rehydrated.User()).To(gomega.BeNil())
		})
	})

	ginkgo.Describe("Subscribe", func() {
		ginkgo.It("should notify subscribers synchronously on every mutation", func() {
			var seen []State
			store.Subscribe(func(s State) { seen = append(seen, s) })

			store.SetAuth(asha, "tok123")
			store.SetEmployee(&Employee{ID: "e-1", EmpNo: "EMP042", EmployeeName: "Asha K"})
			store.Logout()

			gomega.Expect(seen).To(gomega.HaveLen(3))
			gomega.Expect(seen[0].IsAuthenticated).To(gomega.BeTrue())
			gomega.Expect(seen[1].Employee).ToNot(gomega.BeNil())
			gomega.Expect(seen[2].IsAuthenticated).To(gomega.BeFalse())
		})

		ginkgo.It("should stop notifying after unsubscribe", func() {
			calls := 0
			unsubscribe := store.Subscribe(func(State) { calls++ })

			store.SetAuth(asha, "tok123")
			unsubscribe()
			store.Logout()

			gomega.Expect(calls).To(gomega.Equal(1))
		})
	})

	ginkgo.Describe("snapshot isolation", func() {
		ginkgo.It("should not expose internal state through returned records", func() {
			store.SetAuth(asha, "tok123")

			u := store.User()
			u.Name = "mutated"
			u.Department.Name = "mutated"

			gomega.Expect(store.User().Name).To(gomega.Equal("Asha"))
			gomega.Expect(store.User().Department.Name).To(gomega.Equal("Engineering"))
		})
	})

	ginkgo.Describe("rehydration", func() {
		ginkgo.It("should surface storage load failures", func() {
			storage.loadErr = errors.New("disk on fire")

			_, err := NewStore(storage, nil)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})
})

var _ = ginkgo.Describe("FileStorage", func() {
	var (
		dir  string
		path string
	)

	ginkgo.BeforeEach(func() {
		dir = ginkgo.GinkgoT().TempDir()
		path = filepath.Join(dir, "nested", "session.json")
	})

	ginkgo.It("should round-trip the session written by SetAuth", func() {
		first, err := NewStore(NewFileStorage(path), nil)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		first.SetAuth(User{ID: "u-1", Name: "Asha", Email: "asha@example.com", Role: "employee"}, "tok123")

		second, err := NewStore(NewFileStorage(path), nil)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		snapshot := second.Snapshot()
		gomega.Expect(snapshot.IsAuthenticated).To(gomega.BeTrue())
		gomega.Expect(snapshot.Token).To(gomega.Equal("tok123"))
		gomega.Expect(snapshot.User).ToNot(gomega.BeNil())
		gomega.Expect(snapshot.User.Name).To(gomega.Equal("Asha"))
		gomega.Expect(snapshot.Employee).To(gomega.BeNil())
	})

	ginkgo.It("should return nil when no session has been persisted", func() {
		state, err := NewFileStorage(path).Load()
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(state).To(gomega.BeNil())
	})

	ginkgo.It("should write the record with owner-only permissions", func() {
		fs := NewFileStorage(path)
		gomega.Expect(fs.Save(State{Token: "secret", IsAuthenticated: true})).To(gomega.Succeed())

		info, err := os.Stat(path)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(info.Mode().Perm()).To(gomega.Equal(os.FileMode(0o600)))
	})

	ginkgo.It("should fail on a corrupt record", func() {
		gomega.Expect(os.MkdirAll(filepath.Dir(path), 0o700)).To(gomega.Succeed())
		gomega.Expect(os.WriteFile(path, []byte("{not json"), 0o600)).To(gomega.Succeed())

		_, err := NewFileStorage(path).Load()
		gomega.Expect(err).To(gomega.HaveOccurred())
	})

	ginkgo.It("should remove the record on Clear", func() {
		fs := NewFileStorage(path)
		gomega.Expect(fs.Save(State{Token: "t"})).To(gomega.Succeed())
		gomega.Expect(fs.Clear()).To(gomega.Succeed())
		gomega.Expect(fs.Clear()).To(gomega.Succeed())

		state, err := fs.Load()
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(state).To(gomega.BeNil())
	})
})
