package db

import (
	"errors"

	"gorm.io/gorm"
)

// Sanse CRUD. Role checks live in the CLI layer; the repository trusts
// that only admins reach the mutating calls. No reservation counts are
// persisted: buying a sanse is a read-only lookup by id.

func (r *Repository) AddSanse(movieName, releaseDate string, hallCapacity, ageLimit int) (uint, error) {
	sanse := Sanse{
		MovieName:    movieName,
		ReleaseDate:  releaseDate,
		HallCapacity: hallCapacity,
		AgeLimit:     ageLimit,
	}

	if err := r.db.Create(&sanse).Error; err != nil {
		return 0, err
	}
	return sanse.ID, nil
}

func (r *Repository) DeleteSanse(id uint) error {
	res := r.db.Delete(&Sanse{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSanseNotFound
	}
	return nil
}

func (r *Repository) ListSanses() ([]Sanse, error) {
	var sanses []Sanse
	if err := r.db.Order("id").Find(&sanses).Error; err != nil {
		return nil, err
	}
	return sanses, nil
}

func (r *Repository) FindSanse(id uint) (*Sanse, error) {
	var sanse Sanse
	if err := r.db.First(&sanse, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSanseNotFound
		}
		return nil, err
	}
	return &sanse, nil
}
