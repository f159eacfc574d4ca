package services_test

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace-backend/models"
)

// In-memory repository fakes. Each one guards its map with a mutex so tests
// exercising concurrent service paths stay race-free.

// --- carts ---

type memCartRepo struct {
	mu    sync.Mutex
	carts map[primitive.ObjectID]*models.Cart
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: make(map[primitive.ObjectID]*models.Cart)}
}

func (m *memCartRepo) GetActiveCartByUserID(_ context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.carts {
		if c.UserID == userID && c.Status {
			cp := *c
			cp.Items = append([]models.CartItem(nil), c.Items...)
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCartRepo) GetCartByID(_ context.Context, cartID primitive.ObjectID) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[cartID]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.Items = append([]models.CartItem(nil), c.Items...)
	return &cp, nil
}

func (m *memCartRepo) EnsureActiveCart(_ context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.carts {
		if c.UserID == userID && c.Status {
			cp := *c
			cp.Items = append([]models.CartItem(nil), c.Items...)
			return &cp, nil
		}
	}
	c := &models.Cart{ID: primitive.NewObjectID(), UserID: userID, Items: []models.CartItem{}, Status: true}
	m.carts[c.ID] = c
	cp := *c
	return &cp, nil
}

func (m *memCartRepo) IncrementItemQuantity(_ context.Context, cartID, productID primitive.ObjectID, qty int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[cartID]
	if !ok {
		return false, nil
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += qty
			return true, nil
		}
	}
	return false, nil
}

func (m *memCartRepo) PushItem(_ context.Context, cartID primitive.ObjectID, item models.CartItem) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[cartID]
	if !ok {
		return false, nil
	}
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			return false, nil
		}
	}
	c.Items = append(c.Items, item)
	return true, nil
}

func (m *memCartRepo) SetItemQuantity(_ context.Context, cartID, itemID primitive.ObjectID, qty int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[cartID]
	if !ok {
		return false, nil
	}
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items[i].Quantity = qty
			return true, nil
		}
	}
	return false, nil
}

func (m *memCartRepo) PullItem(_ context.Context, cartID, itemID primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[cartID]
	if !ok {
		return false, nil
	}
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memCartRepo) ClearItems(_ context.Context, cartID primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[cartID]
	if !ok {
		return false, nil
	}
	c.Items = []models.CartItem{}
	return true, nil
}

func (m *memCartRepo) SetCartStatus(_ context.Context, cartID primitive.ObjectID, status bool) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[cartID]
	if !ok {
		return false, nil
	}
	c.Status = status
	return true, nil
}

func (m *memCartRepo) DeleteByUserID(_ context.Context, userID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, c := range m.carts {
		if c.UserID == userID && c.Status {
			delete(m.carts, id)
		}
	}
	return nil
}

func (m *memCartRepo) DeleteByID(_ context.Context, cartID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, cartID)
	return nil
}

func (m *memCartRepo) AcceptItemsForProducts(_ context.Context, cartID primitive.ObjectID, productIDs []primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[cartID]
	if !ok {
		return 0, nil
	}
	owned := make(map[primitive.ObjectID]bool, len(productIDs))
	for _, id := range productIDs {
		owned[id] = true
	}
	var n int64
	for i := range c.Items {
		if owned[c.Items[i].ProductID] && c.Items[i].Status == models.ItemStatusPending {
			c.Items[i].Status = models.ItemStatusAccepted
			n++
		}
	}
	return n, nil
}

func (m *memCartRepo) FindCartIDsContainingProduct(_ context.Context, productID primitive.ObjectID) ([]primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []primitive.ObjectID
	for id, c := range m.carts {
		for _, item := range c.Items {
			if item.ProductID == productID {
				ids = append(ids, id)
				break
			}
		}
	}
	return ids, nil
}

// --- orders ---

type memOrderRepo struct {
	mu     sync.Mutex
	orders map[primitive.ObjectID]*models.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[primitive.ObjectID]*models.Order)}
}

func (m *memOrderRepo) FindAll(_ context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Order
	for _, o := range m.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (m *memOrderRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *memOrderRepo) FindByCustomerID(_ context.Context, customerID primitive.ObjectID) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Order
	for _, o := range m.orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *memOrderRepo) Insert(_ context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *order
	m.orders[order.ID] = &cp
	return nil
}

func (m *memOrderRepo) Replace(_ context.Context, id primitive.ObjectID, order *models.Order) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[id]; !ok {
		return false, nil
	}
	cp := *order
	cp.ID = id
	m.orders[id] = &cp
	return true, nil
}

func (m *memOrderRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[id]; !ok {
		return false, nil
	}
	delete(m.orders, id)
	return true, nil
}

func (m *memOrderRepo) UpdateStatusIf(_ context.Context, id primitive.ObjectID, from, to string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	return true, nil
}

func (m *memOrderRepo) CountPendingByCartIDs(_ context.Context, cartIDs []primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	wanted := make(map[primitive.ObjectID]bool, len(cartIDs))
	for _, id := range cartIDs {
		wanted[id] = true
	}
	var n int64
	for _, o := range m.orders {
		if wanted[o.CartID] && o.Status == models.OrderStatusPending {
			n++
		}
	}
	return n, nil
}

// --- products ---

type memProductRepo struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]*models.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[primitive.ObjectID]*models.Product)}
}

func (m *memProductRepo) FindAll(_ context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Product
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *memProductRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProductRepo) FindByCategoryID(_ context.Context, categoryID primitive.ObjectID) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Product
	for _, p := range m.products {
		if p.CategoryID == categoryID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memProductRepo) FindAvailable(_ context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Product
	for _, p := range m.products {
		if p.StockQuantity > 0 {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memProductRepo) FindIDsByVendorID(_ context.Context, vendorID primitive.ObjectID) ([]primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []primitive.ObjectID
	for id, p := range m.products {
		if p.VendorID == vendorID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memProductRepo) Insert(_ context.Context, product *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *product
	m.products[product.ID] = &cp
	return nil
}

func (m *memProductRepo) Replace(_ context.Context, id primitive.ObjectID, product *models.Product) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return false, nil
	}
	cp := *product
	cp.ID = id
	m.products[id] = &cp
	return true, nil
}

func (m *memProductRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return false, nil
	}
	delete(m.products, id)
	return true, nil
}

func (m *memProductRepo) SetActive(_ context.Context, id primitive.ObjectID, active bool) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return false, nil
	}
	p.IsActive = active
	return true, nil
}

func (m *memProductRepo) IncrementStock(_ context.Context, id primitive.ObjectID, qty int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return false, nil
	}
	p.StockQuantity += qty
	return true, nil
}

func (m *memProductRepo) DecrementStockIf(_ context.Context, id primitive.ObjectID, qty int) (bool, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return false, false, nil
	}
	if p.StockQuantity < qty {
		return true, false, nil
	}
	p.StockQuantity -= qty
	return true, true, nil
}

func (m *memProductRepo) RefreshCategoryName(_ context.Context, categoryID primitive.ObjectID, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.CategoryID == categoryID {
			p.CategoryName = name
		}
	}
	return nil
}

// --- users ---

type memUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (m *memUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByRole(_ context.Context, role string) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.User
	for _, u := range m.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *memUserRepo) Insert(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUserRepo) Replace(_ context.Context, id primitive.ObjectID, user *models.User) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	cp := *user
	cp.ID = id
	m.users[id] = &cp
	return true, nil
}

func (m *memUserRepo) SetActive(_ context.Context, id primitive.ObjectID, active bool) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return false, nil
	}
	u.IsActive = active
	return true, nil
}

func (m *memUserRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)
	return true, nil
}

// --- customers ---

type memCustomerRepo struct {
	mu        sync.Mutex
	customers map[primitive.ObjectID]*models.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: make(map[primitive.ObjectID]*models.Customer)}
}

func (m *memCustomerRepo) FindAll(_ context.Context) ([]models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Customer
	for _, c := range m.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (m *memCustomerRepo) FindByEmail(_ context.Context, email string) (*models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.customers {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCustomerRepo) Insert(_ context.Context, customer *models.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *customer
	m.customers[customer.ID] = &cp
	return nil
}

func (m *memCustomerRepo) Replace(_ context.Context, id primitive.ObjectID, customer *models.Customer) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[id]; !ok {
		return false, nil
	}
	cp := *customer
	cp.ID = id
	m.customers[id] = &cp
	return true, nil
}

func (m *memCustomerRepo) SetActiveByEmail(_ context.Context, email string, active bool) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.customers {
		if c.Email == email {
			c.IsActive = active
			return true, nil
		}
	}
	return false, nil
}

func (m *memCustomerRepo) DeleteByEmail(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, c := range m.customers {
		if c.Email == email {
			delete(m.customers, id)
		}
	}
	return nil
}

// --- categories ---

type memCategoryRepo struct {
	mu         sync.Mutex
	categories map[primitive.ObjectID]*models.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: make(map[primitive.ObjectID]*models.Category)}
}

func (m *memCategoryRepo) FindAll(_ context.Context) ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Category
	for _, c := range m.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (m *memCategoryRepo) FindByActive(_ context.Context, active bool) ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Category
	for _, c := range m.categories {
		if c.IsActive == active {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memCategoryRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCategoryRepo) Insert(_ context.Context, category *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *category
	m.categories[category.ID] = &cp
	return nil
}

func (m *memCategoryRepo) Replace(_ context.Context, id primitive.ObjectID, category *models.Category) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[id]; !ok {
		return false, nil
	}
	cp := *category
	cp.ID = id
	m.categories[id] = &cp
	return true, nil
}

func (m *memCategoryRepo) SetActive(_ context.Context, id primitive.ObjectID, active bool) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[id]
	if !ok {
		return false, nil
	}
	c.IsActive = active
	return true, nil
}

func (m *memCategoryRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[id]; !ok {
		return false, nil
	}
	delete(m.categories, id)
	return true, nil
}

func (m *memCategoryRepo) Exists(_ context.Context, id primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.categories[id]
	return ok, nil
}

// --- vendor feedback ---

type memVendorRepo struct {
	mu       sync.Mutex
	rankings []models.VendorRanking
	comments map[string]*models.VendorComment
}

func newMemVendorRepo() *memVendorRepo {
	return &memVendorRepo{comments: make(map[string]*models.VendorComment)}
}

func commentKey(customerID, vendorID primitive.ObjectID) string {
	return customerID.Hex() + ":" + vendorID.Hex()
}

func (m *memVendorRepo) InsertRanking(_ context.Context, ranking *models.VendorRanking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rankings = append(m.rankings, *ranking)
	return nil
}

func (m *memVendorRepo) FindRanking(_ context.Context, customerID, vendorID primitive.ObjectID) (*models.VendorRanking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rankings {
		if r.CustomerID == customerID && r.VendorID == vendorID {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memVendorRepo) FindRankingsByVendorID(_ context.Context, vendorID primitive.ObjectID) ([]models.VendorRanking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.VendorRanking
	for _, r := range m.rankings {
		if r.VendorID == vendorID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memVendorRepo) UpsertComment(_ context.Context, comment *models.VendorComment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := commentKey(comment.CustomerID, comment.VendorID)
	if existing, ok := m.comments[key]; ok {
		existing.Comment = comment.Comment
		return nil
	}
	cp := *comment
	cp.ID = primitive.NewObjectID()
	m.comments[key] = &cp
	return nil
}

func (m *memVendorRepo) FindComment(_ context.Context, customerID, vendorID primitive.ObjectID) (*models.VendorComment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.comments[commentKey(customerID, vendorID)]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

// --- comments ---

type memCommentRepo struct {
	mu       sync.Mutex
	comments map[primitive.ObjectID]*models.Comment
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: make(map[primitive.ObjectID]*models.Comment)}
}

func (m *memCommentRepo) FindByProductID(_ context.Context, productID primitive.ObjectID) ([]models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Comment
	for _, c := range m.comments {
		if c.ProductID == productID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memCommentRepo) FindByVendorID(_ context.Context, vendorID primitive.ObjectID) ([]models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Comment
	for _, c := range m.comments {
		if c.VendorID == vendorID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memCommentRepo) FindByUserID(_ context.Context, userID primitive.ObjectID) ([]models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Comment
	for _, c := range m.comments {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memCommentRepo) Insert(_ context.Context, comment *models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *comment
	m.comments[comment.ID] = &cp
	return nil
}

func (m *memCommentRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.comments[id]; !ok {
		return false, nil
	}
	delete(m.comments, id)
	return true, nil
}

// --- notifier ---

// recordingNotifier captures every notification the services fire so tests
// can assert on delivery without real SMTP.
type recordingNotifier struct {
	mu            sync.Mutex
	lowStock      []string
	activations   []string
	deactivations []string
	csrNotices    []string
	statusChanges []string
}

func (n *recordingNotifier) NotifyVendorLowStock(vendorEmail, productName string, _ int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.lowStock = append(n.lowStock, vendorEmail+":"+productName)
}

func (n *recordingNotifier) NotifyCustomerActivation(email string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.activations = append(n.activations, email)
}

func (n *recordingNotifier) NotifyCustomerDeactivation(email string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.deactivations = append(n.deactivations, email)
}

func (n *recordingNotifier) NotifyCSRNewCustomer(csrEmail, _ string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.csrNotices = append(n.csrNotices, csrEmail)
}

func (n *recordingNotifier) NotifyUserStatusChange(email string, _ bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.statusChanges = append(n.statusChanges, email)
}

// snapshot helpers for notifications fired from detached goroutines.

func (n *recordingNotifier) activationCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.activations)
}

func (n *recordingNotifier) deactivationCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.deactivations)
}

func (n *recordingNotifier) csrNoticeSnapshot() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.csrNotices...)
}

func (n *recordingNotifier) statusChangeCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.statusChanges)
}
