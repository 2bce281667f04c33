package store

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/tutolink/tutolink-api/schema"
)

var (
	ErrAccountTaken    = fmt.Errorf("this account id has been taken")
	ErrAccountNotFound = fmt.Errorf("account not found")
)

// CreateAccount registers a user with a fixed role.
func (s *TutoriaStore) CreateAccount(id, name, role string) (*schema.Account, error) {
	a := schema.Account{
		ID:   id,
		Name: name,
		Role: role,
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	return &a, nil
}

// GetAccount returns the account for a given user id
func (s *TutoriaStore) GetAccount(id string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("id = ?", id).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}
