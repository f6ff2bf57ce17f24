package services

import (
	"context"

	"loja-backend/models"
)

// In-memory fakes for the store interfaces, in the spirit of the real
// repositories but without a database.

type fakeProductStore struct {
	products map[int]models.Product
	nextID   int
}

func newFakeProductStore(products ...models.Product) *fakeProductStore {
	s := &fakeProductStore{products: map[int]models.Product{}, nextID: 1}
	for _, p := range products {
		s.products[p.ID] = p
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s
}

func (s *fakeProductStore) Create(ctx context.Context, product *models.Product) error {
	product.ID = s.nextID
	s.nextID++
	s.products[product.ID] = *product
	return nil
}

func (s *fakeProductStore) GetAll(ctx context.Context, page, limit int) ([]models.Product, int, error) {
	all := []models.Product{}
	for _, p := range s.products {
		all = append(all, p)
	}
	return all, len(all), nil
}

func (s *fakeProductStore) GetByID(ctx context.Context, id int) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &p, nil
}

func (s *fakeProductStore) Update(ctx context.Context, product *models.Product) error {
	if _, ok := s.products[product.ID]; !ok {
		return models.ErrNotFound
	}
	s.products[product.ID] = *product
	return nil
}

func (s *fakeProductStore) Delete(ctx context.Context, id int) error {
	if _, ok := s.products[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

type fakeCategoryStore struct {
	categories map[int]models.Category
	nextID     int
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: map[int]models.Category{}, nextID: 1}
}

func (s *fakeCategoryStore) GetAll(ctx context.Context) ([]models.Category, error) {
	all := []models.Category{}
	for _, cat := range s.categories {
		all = append(all, cat)
	}
	return all, nil
}

func (s *fakeCategoryStore) GetByID(ctx context.Context, id int) (*models.Category, error) {
	cat, ok := s.categories[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &cat, nil
}

func (s *fakeCategoryStore) Create(ctx context.Context, category *models.Category) error {
	for _, existing := range s.categories {
		if existing.Name == category.Name {
			return models.ErrDuplicate
		}
	}
	category.ID = s.nextID
	s.nextID++
	s.categories[category.ID] = *category
	return nil
}

func (s *fakeCategoryStore) Update(ctx context.Context, category *models.Category) error {
	if _, ok := s.categories[category.ID]; !ok {
		return models.ErrNotFound
	}
	s.categories[category.ID] = *category
	return nil
}

func (s *fakeCategoryStore) Delete(ctx context.Context, id int) error {
	if _, ok := s.categories[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.categories, id)
	return nil
}

// fakeCartStore mimics the repository's transactional stock check against
// the product store it was handed.
type fakeCartStore struct {
	products *fakeProductStore
	carts    map[int]*models.Cart
	nextID   int
}

func newFakeCartStore(products *fakeProductStore) *fakeCartStore {
	return &fakeCartStore{products: products, carts: map[int]*models.Cart{}, nextID: 1}
}

func (s *fakeCartStore) Create(ctx context.Context, cart *models.Cart) error {
	cart.ID = s.nextID
	s.nextID++
	stored := *cart
	s.carts[cart.ID] = &stored
	return nil
}

func (s *fakeCartStore) GetByID(ctx context.Context, id int) (*models.Cart, error) {
	cart, ok := s.carts[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *cart
	copied.Items = append([]models.CartItem(nil), cart.Items...)
	for i := range copied.Items {
		if p, ok := s.products.products[copied.Items[i].ProductID]; ok {
			copied.Items[i].Price = p.Price
			copied.Items[i].ProductName = p.Name
		}
	}
	return &copied, nil
}

func (s *fakeCartStore) AddItem(ctx context.Context, cartID, productID, quantity int) error {
	cart, ok := s.carts[cartID]
	if !ok {
		return models.ErrNotFound
	}
	product, ok := s.products.products[productID]
	if !ok {
		return models.ErrNotFound
	}

	existing := 0
	for _, item := range cart.Items {
		if item.ProductID == productID {
			existing = item.Quantity
		}
	}

	if existing+quantity > product.Stock {
		return models.ErrInsufficientStock
	}

	for i, item := range cart.Items {
		if item.ProductID == productID {
			cart.Items[i].Quantity = existing + quantity
			return nil
		}
	}
	cart.Items = append(cart.Items, models.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	})
	return nil
}

func (s *fakeCartStore) RemoveItem(ctx context.Context, cartID, productID int) error {
	cart, ok := s.carts[cartID]
	if !ok {
		return models.ErrNotFound
	}
	for i, item := range cart.Items {
		if item.ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (s *fakeCartStore) UpdateStatus(ctx context.Context, cartID int, status string) error {
	cart, ok := s.carts[cartID]
	if !ok {
		return models.ErrNotFound
	}
	cart.Status = status
	return nil
}

func (s *fakeCartStore) Delete(ctx context.Context, id int) error {
	if _, ok := s.carts[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.carts, id)
	return nil
}

type fakeOrderStore struct {
	orders map[int]*models.Order
	nextID int
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: map[int]*models.Order{}, nextID: 1}
}

func (s *fakeOrderStore) Create(ctx context.Context, order *models.Order) error {
	order.ID = s.nextID
	s.nextID++
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	stored := *order
	stored.Items = append([]models.OrderItem(nil), order.Items...)
	s.orders[order.ID] = &stored
	return nil
}

func (s *fakeOrderStore) GetByID(ctx context.Context, id int) (*models.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *order
	copied.Items = append([]models.OrderItem(nil), order.Items...)
	return &copied, nil
}

func (s *fakeOrderStore) ListByUser(ctx context.Context, userID int) ([]models.Order, error) {
	orders := []models.Order{}
	for _, order := range s.orders {
		if order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (s *fakeOrderStore) ListAll(ctx context.Context, status string, limit, offset int) ([]models.Order, int, error) {
	orders := []models.Order{}
	for _, order := range s.orders {
		if status == "" || order.Status == status {
			orders = append(orders, *order)
		}
	}
	return orders, len(orders), nil
}

func (s *fakeOrderStore) UpdateStatus(ctx context.Context, orderID int, status string) error {
	order, ok := s.orders[orderID]
	if !ok {
		return models.ErrNotFound
	}
	order.Status = status
	return nil
}

func (s *fakeOrderStore) Delete(ctx context.Context, id int) error {
	if _, ok := s.orders[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.orders, id)
	return nil
}

// fakeUserStore enforces the same unique email and phone constraints as the
// database, and keeps user and profile creation all-or-nothing.
type fakeUserStore struct {
	users    map[int]models.User
	profiles map[int]models.CustomerProfile // keyed by user ID
	nextID   int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:    map[int]models.User{},
		profiles: map[int]models.CustomerProfile{},
		nextID:   1,
	}
}

func (s *fakeUserStore) CreateWithProfile(ctx context.Context, user *models.User, profile *models.CustomerProfile) error {
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return models.ErrDuplicate
		}
	}
	for _, existing := range s.profiles {
		if existing.Phone == profile.Phone {
			return models.ErrDuplicate
		}
	}
	user.ID = s.nextID
	s.nextID++
	profile.ID = user.ID
	profile.UserID = user.ID
	s.users[user.ID] = *user
	s.profiles[user.ID] = *profile
	return nil
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *fakeUserStore) GetUserWithProfile(ctx context.Context, userID int) (*models.UserWithProfile, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, models.ErrNotFound
	}
	out := &models.UserWithProfile{ID: u.ID, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt}
	if p, ok := s.profiles[userID]; ok {
		out.Address = p.Address
		out.Phone = p.Phone
		out.BirthDate = p.BirthDate
	}
	return out, nil
}

func (s *fakeUserStore) UpdateProfile(ctx context.Context, profile *models.CustomerProfile) error {
	if _, ok := s.profiles[profile.UserID]; !ok {
		return models.ErrNotFound
	}
	for id, existing := range s.profiles {
		if id != profile.UserID && existing.Phone == profile.Phone {
			return models.ErrDuplicate
		}
	}
	s.profiles[profile.UserID] = *profile
	return nil
}

// fakeOrderFinalizer mimics the repository's locked check-then-decrement
// against the product store it was handed. Nothing changes unless every
// line fits in stock.
type fakeOrderFinalizer struct {
	products *fakeProductStore
	orders   []models.Order
	nextID   int
}

func newFakeOrderFinalizer(products *fakeProductStore) *fakeOrderFinalizer {
	return &fakeOrderFinalizer{products: products, nextID: 1}
}

func (s *fakeOrderFinalizer) FinalizeOrder(ctx context.Context, order *models.Order) error {
	for i := range order.Items {
		item := &order.Items[i]
		p, ok := s.products.products[item.ProductID]
		if !ok {
			return models.ErrNotFound
		}
		if item.Quantity > p.Stock {
			return models.ErrInsufficientStock
		}
		item.ProductName = p.Name
		item.UnitPrice = p.Price
	}

	order.ID = s.nextID
	s.nextID++
	for i := range order.Items {
		item := &order.Items[i]
		item.ID = i + 1
		item.OrderID = order.ID
		p := s.products.products[item.ProductID]
		p.Stock -= item.Quantity
		s.products.products[item.ProductID] = p
	}

	stored := *order
	stored.Items = append([]models.OrderItem(nil), order.Items...)
	s.orders = append(s.orders, stored)
	return nil
}

type fakeSessionCartStore struct {
	carts map[string]models.SessionCart
}

func newFakeSessionCartStore() *fakeSessionCartStore {
	return &fakeSessionCartStore{carts: map[string]models.SessionCart{}}
}

func (s *fakeSessionCartStore) Get(ctx context.Context, sessionID string) (models.SessionCart, error) {
	cart := make(models.SessionCart, len(s.carts[sessionID]))
	copy(cart, s.carts[sessionID])
	return cart, nil
}

func (s *fakeSessionCartStore) Save(ctx context.Context, sessionID string, cart models.SessionCart) error {
	s.carts[sessionID] = cart
	return nil
}

func (s *fakeSessionCartStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.carts, sessionID)
	return nil
}
