package loan

import (
	"context"
	"errors"

	"github.com/xiebiao/library/internal/domain/loan"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// GetLoanUseCase 借阅记录详情用例
type GetLoanUseCase struct {
	loanRepo loan.Repository
}

// NewGetLoanUseCase 创建借阅记录详情用例
func NewGetLoanUseCase(loanRepo loan.Repository) *GetLoanUseCase {
	return &GetLoanUseCase{loanRepo: loanRepo}
}

// Execute 根据ID查询借阅记录
func (uc *GetLoanUseCase) Execute(ctx context.Context, id uint) (*LoanItem, error) {
	l, err := uc.loanRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, loan.ErrLoanNotFound) {
			return nil, apperrors.ErrLoanNotFound
		}
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "查询借阅记录失败")
	}

	item := toLoanItem(l)
	return &item, nil
}
