package dashboard

import (
	"context"

	"github.com/Dhruv435/slugma-admin/internal/models"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int) error
}

// UserDirectory is the account listing view. Deletion is the one mutation
// that updates the local list optimistically instead of re-fetching.
type UserDirectory struct {
	svc     UserService
	confirm ConfirmFunc
	users   []models.User
	banner  Banner
}

func NewUserDirectory(svc UserService, confirm ConfirmFunc) *UserDirectory {
	return &UserDirectory{svc: svc, confirm: confirm}
}

func (d *UserDirectory) Load(ctx context.Context) error {
	users, err := d.svc.ListUsers(ctx)
	if err != nil {
		return err
	}
	d.users = users
	return nil
}

func (d *UserDirectory) Users() []models.User { return d.users }
func (d *UserDirectory) Banner() Banner       { return d.banner }

// Delete removes the account after confirmation. On success the entry
// leaves the displayed list immediately, without a full re-fetch.
func (d *UserDirectory) Delete(ctx context.Context, id int) error {
	username := ""
	for _, u := range d.users {
		if u.ID == id {
			username = u.Username
			break
		}
	}

	if !d.confirm(`Are you sure you want to delete user "` + username + `"? This action cannot be undone.`) {
		return nil
	}

	if err := d.svc.DeleteUser(ctx, id); err != nil {
		d.banner = failuref("Failed to delete user %q: %v", username, err)
		return err
	}

	kept := make([]models.User, 0, len(d.users))
	for _, u := range d.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	d.users = kept
	d.banner = successf("User %q deleted successfully!", username)
	return nil
}
