package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/iho/finledger/internal/domain"
)

// TransactionFactory validates raw input and builds transactions.
// It never touches ledger state; callers hand the result to LedgerService.AddTransaction.
type TransactionFactory struct {
	idGen IDGenerator
	clock Clock
}

// NewTransactionFactory creates a new TransactionFactory.
func NewTransactionFactory(idGen IDGenerator, clock Clock) *TransactionFactory {
	if clock == nil {
		clock = SystemClock{}
	}

	return &TransactionFactory{
		idGen: idGen,
		clock: clock,
	}
}

// CreateTransaction validates input and builds a transaction dated now.
// Category is not checked against the transaction type.
func (f *TransactionFactory) CreateTransaction(
	accountID string,
	txType domain.TransactionType,
	amount decimal.Decimal,
	description string,
	category domain.Category,
) (*domain.Transaction, error) {
	if err := domain.ValidateAccountID(accountID); err != nil {
		return nil, err
	}

	if !txType.IsValid() {
		return nil, domain.NewValidationError("type", "transaction type is required")
	}

	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}

	if err := domain.ValidateDescription(description); err != nil {
		return nil, err
	}

	return domain.NewTransaction(f.newID(), accountID, txType, amount, description, category, f.clock.Now())
}

// CreateIncomeTransaction creates an INCOME transaction.
func (f *TransactionFactory) CreateIncomeTransaction(
	accountID string,
	amount decimal.Decimal,
	description string,
	category domain.Category,
) (*domain.Transaction, error) {
	return f.CreateTransaction(accountID, domain.TransactionTypeIncome, amount, description, category)
}

// CreateExpenseTransaction creates an EXPENSE transaction.
func (f *TransactionFactory) CreateExpenseTransaction(
	accountID string,
	amount decimal.Decimal,
	description string,
	category domain.Category,
) (*domain.Transaction, error) {
	return f.CreateTransaction(accountID, domain.TransactionTypeExpense, amount, description, category)
}

// CreateTransfer builds the two legs of a transfer: an OTHER_EXPENSE debit on the source
// and an OTHER_INCOME credit on the destination, linked by a shared token.
// Neither leg is applied; the caller posts both.
func (f *TransactionFactory) CreateTransfer(
	fromAccountID, toAccountID string,
	amount decimal.Decimal,
	description string,
) (debit, credit *domain.Transaction, err error) {
	if err := domain.ValidateAccountID(fromAccountID); err != nil {
		return nil, nil, err
	}

	if err := domain.ValidateAccountID(toAccountID); err != nil {
		return nil, nil, err
	}

	if fromAccountID == toAccountID {
		return nil, nil, domain.ErrSameAccount
	}

	if err := domain.ValidateAmount(amount); err != nil {
		return nil, nil, err
	}

	token := f.newID()
	now := f.clock.Now()
	annotated := description + " (Transfer)"

	debit, err = domain.NewTransaction(
		token+DebitSuffix,
		fromAccountID,
		domain.TransactionTypeExpense,
		amount,
		"Transfer to "+toAccountID+" - "+annotated,
		domain.CategoryOtherExpense,
		now,
	)
	if err != nil {
		return nil, nil, err
	}

	credit, err = domain.NewTransaction(
		token+CreditSuffix,
		toAccountID,
		domain.TransactionTypeIncome,
		amount,
		"Transfer from "+fromAccountID+" - "+annotated,
		domain.CategoryOtherIncome,
		now,
	)
	if err != nil {
		return nil, nil, err
	}

	debit.TransferID = token
	credit.TransferID = token

	return debit, credit, nil
}

func (f *TransactionFactory) newID() string {
	return TransactionIDPrefix + f.idGen.Generate()
}
