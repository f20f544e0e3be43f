package repository

import "context"

// Repositories agrupa los repositorios atados a una misma transacción.
type Repositories struct {
	States         StateRepository
	Municipalities MunicipalityRepository
	Localities     LocalityRepository
	Addresses      AddressRepository
	Customers      CustomerRepository
}

// TxRunner ejecuta fn dentro de una transacción. Si fn devuelve error se hace rollback
// y el error se propaga sin modificar; en otro caso se hace commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repositories) error) error
}
