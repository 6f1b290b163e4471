package services

import (
	"github.com/SscSPs/pos_finance_manager/internal/core/ports"
	portsrepo "github.com/SscSPs/pos_finance_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_finance_manager/internal/core/ports/services"
)

// Infrastructure groups the non-repository collaborators of the services.
type Infrastructure struct {
	Mapper         AccountMapper
	JournalNumbers JournalNumberer
	Locker         ports.IdempotencyLocker
	Publisher      ports.EventPublisher
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, infra Infrastructure) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo, infra.JournalNumbers)

	// Records post through the journal service; the recorders go through
	// the transaction service so every business event is booked the same way.
	var txnOptions []TransactionServiceOption
	if infra.Publisher != nil {
		txnOptions = append(txnOptions, WithEventPublisher(infra.Publisher))
	}
	container.Transaction = NewTransactionService(repos.RecordRepo, container.Journal, infra.Mapper, txnOptions...)
	container.Recorder = NewRecorderService(repos.RecordRepo, container.Transaction, infra.Locker)
	container.Payroll = NewPayrollService(repos.PayrollRepo, repos.RecordRepo, container.Transaction, infra.Locker)

	container.Reporting = NewReportingService(repos.ReportingRepo, repos.AccountRepo, repos.RecordRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade     = (*AccountService)(nil)
	_ portssvc.JournalSvcFacade     = (*journalService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
)
