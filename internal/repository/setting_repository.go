package repository

import (
	"codedex_backend/internal/model"

	"gorm.io/gorm"
)

type SettingRepository struct {
	DB *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{DB: db}
}

func (r *SettingRepository) GetAll() ([]model.Setting, error) {
	var settings []model.Setting
	err := r.DB.Order("`key` ASC").Find(&settings).Error
	return settings, err
}

func (r *SettingRepository) Get(key string) (*model.Setting, error) {
	var setting model.Setting
	err := r.DB.Where("`key` = ?", key).First(&setting).Error
	return &setting, err
}

// Upsert creates the key on first write, updates it afterwards.
func (r *SettingRepository) Upsert(key, value string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.Setting
		err := tx.Where("`key` = ?", key).First(&existing).Error
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			return tx.Create(&model.Setting{Key: key, Value: value}).Error
		}
		existing.Value = value
		return tx.Save(&existing).Error
	})
}
