package user

import (
	"context"
	"encoding/json"

	"github.com/Xrime/budget-buddy/internal/kvstore"
	log "github.com/sirupsen/logrus"
)

const usersNamespace = "users"

type userRecord struct {
	Id          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// FileUserRepo keeps users in the local key-value store, one record per user id.
type FileUserRepo struct {
	store *kvstore.Store
}

func NewFileUserRepo(store *kvstore.Store) *FileUserRepo {
	return &FileUserRepo{store: store}
}

func (r *FileUserRepo) CreateUser(ctx context.Context, user User) (User, error) {
	data, err := json.Marshal(userRecord{Id: user.Id, DisplayName: user.DisplayName})
	if err != nil {
		log.Errorf("failed to serialize user: %v", err)
		return User{}, err
	}
	if err := r.store.Put(usersNamespace, user.Id, data); err != nil {
		log.Errorf("failed to store user: %v", err)
		return User{}, err
	}
	return user, nil
}

func (r *FileUserRepo) GetUser(ctx context.Context, id string) (User, error) {
	data, found, err := r.store.Get(usersNamespace, id)
	if err != nil {
		log.Errorf("failed to read user: %v", err)
		return User{}, err
	}
	if !found {
		return User{}, ErrUserNotFound
	}
	var record userRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Errorf("failed to deserialize user: %v", err)
		return User{}, err
	}
	return User{Id: record.Id, DisplayName: record.DisplayName}, nil
}

func (r *FileUserRepo) GetAllUsers(ctx context.Context) ([]User, error) {
	values, err := r.store.List(usersNamespace)
	if err != nil {
		log.Errorf("failed to list users: %v", err)
		return nil, err
	}
	users := make([]User, 0, len(values))
	for _, data := range values {
		var record userRecord
		if err := json.Unmarshal(data, &record); err != nil {
			log.Errorf("failed to deserialize user: %v", err)
			return nil, err
		}
		users = append(users, User{Id: record.Id, DisplayName: record.DisplayName})
	}
	return users, nil
}

func (r *FileUserRepo) DeleteUser(ctx context.Context, id string) error {
	if _, err := r.GetUser(ctx, id); err != nil {
		return err
	}
	return r.store.Delete(usersNamespace, id)
}
