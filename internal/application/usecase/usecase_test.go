package usecase_test

import (
	"context"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/jhoicas/stampout-pos-api/internal/domain/repository"
)

// Actores de prueba. superAdmin() omite el scoping por compañía; admin()
// siempre queda restringido a su propia compañía.

const (
	companyA = "aaaaaaaa-0000-0000-0000-000000000001"
	companyB = "bbbbbbbb-0000-0000-0000-000000000001"
)

func superAdmin() *entity.AuthUser {
	return &entity.AuthUser{
		ID:        "00000000-0000-0000-0000-0000000000sa",
		Username:  "root",
		CompanyID: companyA,
		Role:      entity.RoleSummary{Name: entity.RoleSuperAdmin},
	}
}

func admin(companyID string) *entity.AuthUser {
	return &entity.AuthUser{
		ID:        "00000000-0000-0000-0000-0000000000ad",
		Username:  "admin",
		CompanyID: companyID,
		Role:      entity.RoleSummary{Name: entity.RoleAdmin},
	}
}

// fakeCompanyRepo fake en memoria del puerto de compañías. Los métodos no
// usados por cada test quedan en el interface embebido y entran en pánico si
// se invocan.
type fakeCompanyRepo struct {
	repository.CompanyRepository
	byID         map[string]*entity.Company
	byTaxID      map[string]*entity.Company
	activeStores int
	activeUsers  int
	deletedIDs   []string
	lastFilter   repository.CompanyFilter
	created      []*entity.Company
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	f.created = append(f.created, c)
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id, scopeCompanyID string, _ bool) (*entity.Company, error) {
	c := f.byID[id]
	if c == nil || (scopeCompanyID != "" && c.ID != scopeCompanyID) {
		return nil, nil
	}
	return c, nil
}

func (f *fakeCompanyRepo) GetByTaxID(_ context.Context, taxID string) (*entity.Company, error) {
	return f.byTaxID[taxID], nil
}

func (f *fakeCompanyRepo) List(_ context.Context, filter repository.CompanyFilter) ([]*entity.Company, int, error) {
	f.lastFilter = filter
	return nil, 0, nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, id string, _ repository.CompanyPatch) (*entity.Company, error) {
	return f.byID[id], nil
}

func (f *fakeCompanyRepo) CountActiveDependents(_ context.Context, _ string) (int, int, error) {
	return f.activeStores, f.activeUsers, nil
}

func (f *fakeCompanyRepo) SoftDelete(_ context.Context, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

// fakeRoleRepo fake en memoria del puerto de roles.
type fakeRoleRepo struct {
	repository.RoleRepository
	byID        map[string]*entity.Role
	byName      map[string]*entity.Role
	activeUsers int
	deletedIDs  []string
}

func (f *fakeRoleRepo) GetByID(_ context.Context, id string) (*entity.Role, error) {
	return f.byID[id], nil
}

func (f *fakeRoleRepo) GetByName(_ context.Context, name string) (*entity.Role, error) {
	return f.byName[name], nil
}

func (f *fakeRoleRepo) CountActiveUsers(_ context.Context, _ string) (int, error) {
	return f.activeUsers, nil
}

func (f *fakeRoleRepo) SoftDelete(_ context.Context, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

// fakeUserRepo fake en memoria del puerto de usuarios.
type fakeUserRepo struct {
	repository.UserRepository
	byID         map[string]*entity.User
	byUsername   map[string]*entity.User
	byPersonID   map[string]*entity.User
	created      []*entity.User
	deletedIDs   []string
	lastFilter   repository.UserFilter
	updatedPatch *repository.UserPatch
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.created = append(f.created, u)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id, scopeCompanyID string) (*entity.User, error) {
	u := f.byID[id]
	if u == nil || (scopeCompanyID != "" && u.CompanyID != scopeCompanyID) {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return f.byUsername[username], nil
}

func (f *fakeUserRepo) GetActiveByPersonID(_ context.Context, personID string) (*entity.User, error) {
	return f.byPersonID[personID], nil
}

func (f *fakeUserRepo) List(_ context.Context, filter repository.UserFilter) ([]*entity.User, int, error) {
	f.lastFilter = filter
	return nil, 0, nil
}

func (f *fakeUserRepo) Update(_ context.Context, id string, p repository.UserPatch) (*entity.User, error) {
	f.updatedPatch = &p
	return f.byID[id], nil
}

func (f *fakeUserRepo) SoftDelete(_ context.Context, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

// fakePersonRepo fake en memoria del puerto de personas.
type fakePersonRepo struct {
	repository.PersonRepository
	byID        map[string]*entity.Person
	byTypeAndNo map[string]*entity.Person // clave typeID+"|"+number
	activeUsers int
	deletedIDs  []string
	created     []*entity.Person
}

func (f *fakePersonRepo) Create(_ context.Context, p *entity.Person) error {
	f.created = append(f.created, p)
	return nil
}

func (f *fakePersonRepo) GetByID(_ context.Context, id string) (*entity.Person, error) {
	return f.byID[id], nil
}

func (f *fakePersonRepo) GetByTypeAndNumber(_ context.Context, typeID, number string) (*entity.Person, error) {
	return f.byTypeAndNo[typeID+"|"+number], nil
}

func (f *fakePersonRepo) CountActiveUsers(_ context.Context, _ string) (int, error) {
	return f.activeUsers, nil
}

func (f *fakePersonRepo) SoftDelete(_ context.Context, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

// fakeIdentificationTypeRepo fake en memoria del catálogo de tipos.
type fakeIdentificationTypeRepo struct {
	repository.IdentificationTypeRepository
	byID          map[string]*entity.IdentificationType
	byCode        map[string]*entity.IdentificationType
	activePersons int
	deletedIDs    []string
}

func (f *fakeIdentificationTypeRepo) GetByID(_ context.Context, id string) (*entity.IdentificationType, error) {
	return f.byID[id], nil
}

func (f *fakeIdentificationTypeRepo) GetByCode(_ context.Context, code string) (*entity.IdentificationType, error) {
	return f.byCode[code], nil
}

func (f *fakeIdentificationTypeRepo) CountActivePersons(_ context.Context, _ string) (int, error) {
	return f.activePersons, nil
}

func (f *fakeIdentificationTypeRepo) SoftDelete(_ context.Context, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

// fakeCategoryRepo fake en memoria del puerto de categorías.
type fakeCategoryRepo struct {
	repository.CategoryRepository
	byID           map[string]*entity.Category
	byName         map[string]*entity.Category // clave companyID+"|"+name
	activeProducts int
	deletedIDs     []string
	created        []*entity.Category
	updatedPatch   *repository.CategoryPatch
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	f.created = append(f.created, c)
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id, companyID string) (*entity.Category, error) {
	c := f.byID[id]
	if c == nil || c.CompanyID != companyID {
		return nil, nil
	}
	return c, nil
}

func (f *fakeCategoryRepo) GetByCompanyAndName(_ context.Context, companyID, name string) (*entity.Category, error) {
	return f.byName[companyID+"|"+name], nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, id, companyID string, p repository.CategoryPatch) (*entity.Category, error) {
	f.updatedPatch = &p
	c := f.byID[id]
	if c == nil || c.CompanyID != companyID {
		return nil, nil
	}
	return c, nil
}

func (f *fakeCategoryRepo) CountActiveProducts(_ context.Context, _ string) (int, error) {
	return f.activeProducts, nil
}

func (f *fakeCategoryRepo) SoftDelete(_ context.Context, id, _ string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

// fakeStoreRepo fake en memoria del puerto de tiendas.
type fakeStoreRepo struct {
	repository.StoreRepository
	byID        map[string]*entity.Store
	byCode      map[string]*entity.Store // clave companyID+"|"+code
	activeUsers int
	deletedIDs  []string
	created     []*entity.Store
}

func (f *fakeStoreRepo) Create(_ context.Context, s *entity.Store) error {
	f.created = append(f.created, s)
	return nil
}

func (f *fakeStoreRepo) GetByID(_ context.Context, id, scopeCompanyID string) (*entity.Store, error) {
	s := f.byID[id]
	if s == nil || (scopeCompanyID != "" && s.CompanyID != scopeCompanyID) {
		return nil, nil
	}
	return s, nil
}

func (f *fakeStoreRepo) GetByCompanyAndCode(_ context.Context, companyID, code string) (*entity.Store, error) {
	return f.byCode[companyID+"|"+code], nil
}

func (f *fakeStoreRepo) CountActiveUsers(_ context.Context, _ string) (int, error) {
	return f.activeUsers, nil
}

func (f *fakeStoreRepo) SoftDelete(_ context.Context, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

// fakeSubcategoryRepo fake en memoria del puerto de subcategorías.
type fakeSubcategoryRepo struct {
	repository.SubcategoryRepository
	byID           map[string]*entity.Subcategory
	byCatName      map[string]*entity.Subcategory // clave companyID+"|"+categoryID+"|"+name
	activeProducts int
	deletedIDs     []string
	created        []*entity.Subcategory
	updatedPatch   *repository.SubcategoryPatch
}

func (f *fakeSubcategoryRepo) Create(_ context.Context, s *entity.Subcategory) error {
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSubcategoryRepo) GetByID(_ context.Context, id, companyID string) (*entity.Subcategory, error) {
	s := f.byID[id]
	if s == nil || s.CompanyID != companyID {
		return nil, nil
	}
	return s, nil
}

func (f *fakeSubcategoryRepo) GetByCategoryAndName(_ context.Context, companyID, categoryID, name string) (*entity.Subcategory, error) {
	return f.byCatName[companyID+"|"+categoryID+"|"+name], nil
}

func (f *fakeSubcategoryRepo) Update(_ context.Context, id, companyID string, p repository.SubcategoryPatch) (*entity.Subcategory, error) {
	f.updatedPatch = &p
	s := f.byID[id]
	if s == nil || s.CompanyID != companyID {
		return nil, nil
	}
	return s, nil
}

func (f *fakeSubcategoryRepo) CountActiveProducts(_ context.Context, _ string) (int, error) {
	return f.activeProducts, nil
}

func (f *fakeSubcategoryRepo) SoftDelete(_ context.Context, id, _ string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

// fakeProductRepo fake en memoria del puerto de productos.
type fakeProductRepo struct {
	repository.ProductRepository
	byID         map[string]*entity.Product
	bySKU        map[string]*entity.Product // clave companyID+"|"+sku
	deletedIDs   []string
	created      []*entity.Product
	lastFilter   repository.ProductFilter
	updatedPatch *repository.ProductPatch
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.created = append(f.created, p)
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id, companyID string) (*entity.Product, error) {
	p := f.byID[id]
	if p == nil || p.CompanyID != companyID {
		return nil, nil
	}
	return p, nil
}

func (f *fakeProductRepo) GetByCompanyAndSKU(_ context.Context, companyID, sku string) (*entity.Product, error) {
	return f.bySKU[companyID+"|"+sku], nil
}

func (f *fakeProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, int, error) {
	f.lastFilter = filter
	return nil, 0, nil
}

func (f *fakeProductRepo) Update(_ context.Context, id, companyID string, p repository.ProductPatch) (*entity.Product, error) {
	f.updatedPatch = &p
	pr := f.byID[id]
	if pr == nil || pr.CompanyID != companyID {
		return nil, nil
	}
	return pr, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id, _ string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

// fakeTaxRepo fake en memoria del puerto de impuestos.
type fakeTaxRepo struct {
	repository.TaxRepository
	byID         map[string]*entity.Tax
	byName       map[string]*entity.Tax // clave companyID+"|"+name
	deletedIDs   []string
	created      []*entity.Tax
	updatedPatch *repository.TaxPatch
}

func (f *fakeTaxRepo) Create(_ context.Context, t *entity.Tax) error {
	f.created = append(f.created, t)
	return nil
}

func (f *fakeTaxRepo) GetByID(_ context.Context, id, companyID string) (*entity.Tax, error) {
	tx := f.byID[id]
	if tx == nil || tx.CompanyID != companyID {
		return nil, nil
	}
	return tx, nil
}

func (f *fakeTaxRepo) GetByCompanyAndName(_ context.Context, companyID, name string) (*entity.Tax, error) {
	return f.byName[companyID+"|"+name], nil
}

func (f *fakeTaxRepo) Update(_ context.Context, id, companyID string, p repository.TaxPatch) (*entity.Tax, error) {
	f.updatedPatch = &p
	tx := f.byID[id]
	if tx == nil || tx.CompanyID != companyID {
		return nil, nil
	}
	return tx, nil
}

func (f *fakeTaxRepo) Delete(_ context.Context, id, _ string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}
