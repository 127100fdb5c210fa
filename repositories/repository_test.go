package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"grocery-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}))
	return db
}

func TestCreateUserUniqueEmail(t *testing.T) {
	db := setupTestDB(t)
	repository := NewAuthRepository(db)

	first, err := repository.CreateUser(models.User{
		Email:          "a@x.com",
		FullName:       "A",
		HashedPassword: "hash",
		IsActive:       true,
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	// ユニーク制約により二人目は失敗する
	_, err = repository.CreateUser(models.User{
		Email:          "a@x.com",
		FullName:       "B",
		HashedPassword: "hash",
		IsActive:       true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint")
}

func TestFindUser(t *testing.T) {
	db := setupTestDB(t)
	repository := NewAuthRepository(db)

	_, err := repository.CreateUser(models.User{
		Email:          "a@x.com",
		FullName:       "A",
		HashedPassword: "hash",
		IsActive:       true,
	})
	require.NoError(t, err)

	user, err := repository.FindUser("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "A", user.FullName)

	_, err = repository.FindUser("nobody@x.com")
	assert.Error(t, err)
}

func TestCategoryFindAllPreloadsProducts(t *testing.T) {
	db := setupTestDB(t)
	categoryRepository := NewCategoryRepository(db)
	productRepository := NewProductRepository(db)

	category, err := categoryRepository.Create(models.Category{Name: "Produce"})
	require.NoError(t, err)

	categories, err := categoryRepository.FindAll(0, 100)
	require.NoError(t, err)
	require.Len(t, *categories, 1)
	assert.Empty(t, (*categories)[0].Products)

	_, err = productRepository.Create(models.Product{
		Name:       "Apple",
		Price:      1.5,
		Image:      "a.png",
		Unit:       "kg",
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	categories, err = categoryRepository.FindAll(0, 100)
	require.NoError(t, err)
	require.Len(t, *categories, 1)
	require.Len(t, (*categories)[0].Products, 1)
	assert.Equal(t, "Apple", (*categories)[0].Products[0].Name)
}

func TestCategoryFindAllPagination(t *testing.T) {
	db := setupTestDB(t)
	repository := NewCategoryRepository(db)

	for _, name := range []string{"Produce", "Dairy", "Bakery"} {
		_, err := repository.Create(models.Category{Name: name})
		require.NoError(t, err)
	}

	categories, err := repository.FindAll(1, 1)
	require.NoError(t, err)
	assert.Len(t, *categories, 1)
}

func TestProductFindByCategory(t *testing.T) {
	db := setupTestDB(t)
	categoryRepository := NewCategoryRepository(db)
	productRepository := NewProductRepository(db)

	produce, err := categoryRepository.Create(models.Category{Name: "Produce"})
	require.NoError(t, err)
	dairy, err := categoryRepository.Create(models.Category{Name: "Dairy"})
	require.NoError(t, err)

	_, err = productRepository.Create(models.Product{
		Name:       "Apple",
		Price:      1.5,
		Image:      "a.png",
		Unit:       "kg",
		CategoryID: produce.ID,
	})
	require.NoError(t, err)

	products, err := productRepository.FindByCategory(produce.ID)
	require.NoError(t, err)
	require.Len(t, *products, 1)
	assert.Equal(t, "Apple", (*products)[0].Name)

	products, err = productRepository.FindByCategory(dairy.ID)
	require.NoError(t, err)
	assert.Empty(t, *products)

	// 存在しないCategoryのIDでもエラーにならない
	products, err = productRepository.FindByCategory(999)
	require.NoError(t, err)
	assert.Empty(t, *products)
}
