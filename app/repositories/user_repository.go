package repositories

import (
	"github.com/shashiranjanraj/opsdash/app/models"
	"github.com/shashiranjanraj/opsdash/pkg/orm"
)

// ordersCountSelect annotates each user row with how many orders they placed.
const ordersCountSelect = "users.*, " +
	"(SELECT COUNT(*) FROM orders WHERE orders.user_id = users.id AND orders.deleted_at IS NULL) AS orders_count"

// UserRepository handles database operations for User.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByEmail looks up a user by their email address.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := orm.DB().Model(&models.User{}).Where("email = ?", email).First(&user)
	return user, err
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := orm.DB().Model(&models.User{}).Where("id = ?", id).First(&user)
	return user, err
}

// Create persists a new user record.
func (r *UserRepository) Create(user *models.User) error {
	return orm.DB().Create(user)
}

// All returns a page of users, newest first, each annotated with their order
// count.
func (r *UserRepository) All(page, limit int) ([]models.User, orm.Pagination, error) {
	var users []models.User
	pagination, err := orm.DB().
		Model(&models.User{}).
		Select(ordersCountSelect).
		Order("created_at DESC, id DESC").
		GetWithPagination(&users, page, limit)
	return users, pagination, err
}
