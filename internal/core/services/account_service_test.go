package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/pos_finance_manager/internal/apperrors"
	"github.com/SscSPs/pos_finance_manager/internal/core/domain"
	"github.com/SscSPs/pos_finance_manager/internal/core/services"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  *services.AccountService
	ctx      context.Context
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockAccountRepository)
	s.service = services.NewAccountService(s.mockRepo)
	s.ctx = context.Background()
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) TestGetAccountByCode_Success() {
	expected := &domain.Account{AccountID: "acc-1", Code: "1111", Name: "Kas"}
	s.mockRepo.On("FindAccountByCode", s.ctx, "1111").Return(expected, nil).Once()

	account, err := s.service.GetAccountByCode(s.ctx, "1111")

	s.NoError(err)
	s.Equal(expected, account)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestGetAccountByCode_NotFound() {
	s.mockRepo.On("FindAccountByCode", s.ctx, "9999").Return(nil, apperrors.ErrNotFound).Once()

	account, err := s.service.GetAccountByCode(s.ctx, "9999")

	s.Nil(account)
	var nfErr *apperrors.NotFoundError
	s.Require().True(errors.As(err, &nfErr))
	s.Equal("9999", nfErr.Key)
}

func (s *AccountServiceTestSuite) TestGetChartOfAccounts_RepositoryError() {
	s.mockRepo.On("ListActiveAccounts", s.ctx).Return(nil, errors.New("db error")).Once()

	accounts, err := s.service.GetChartOfAccounts(s.ctx)

	s.Error(err)
	s.Nil(accounts)
}

func (s *AccountServiceTestSuite) TestDeactivateAccount() {
	s.mockRepo.On("FindAccountByCode", s.ctx, "6190").Return(&domain.Account{Code: "6190", IsActive: true}, nil).Once()
	s.mockRepo.On("DeactivateAccount", s.ctx, "6190", "admin", mock.Anything).Return(nil).Once()

	s.NoError(s.service.DeactivateAccount(s.ctx, "6190", "admin"))
	s.mockRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestDeactivateAccount_Unknown() {
	s.mockRepo.On("FindAccountByCode", s.ctx, "0000").Return(nil, apperrors.ErrNotFound).Once()

	s.ErrorIs(s.service.DeactivateAccount(s.ctx, "0000", "admin"), apperrors.ErrNotFound)
	s.mockRepo.AssertNotCalled(s.T(), "DeactivateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestDeactivateAccount_AlreadyInactive() {
	s.mockRepo.On("FindAccountByCode", s.ctx, "6190").Return(&domain.Account{Code: "6190", IsActive: false}, nil).Once()

	err := s.service.DeactivateAccount(s.ctx, "6190", "admin")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "DeactivateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
