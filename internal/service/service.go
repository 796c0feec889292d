package service

import (
	"perfhistory/internal/db/models/postgres/public/model"
	"perfhistory/internal/domain"
)

func SnapshotToDomain(s model.PortfolioDailySnapshot) domain.DailySnapshot {
	return domain.DailySnapshot{
		PortfolioID:    s.PortfolioID,
		Date:           s.Date,
		TotalEquity:    s.TotalEquity,
		CashBalance:    s.CashBalance,
		NetCashFlow:    s.NetCashFlow,
		DailyReturnPct: s.DailyReturnPct,
	}
}

func SnapshotsToDomain(snapshots []model.PortfolioDailySnapshot) []domain.DailySnapshot {
	out := []domain.DailySnapshot{}
	for _, s := range snapshots {
		out = append(out, SnapshotToDomain(s))
	}
	return out
}

func snapshotToModel(s domain.DailySnapshot) model.PortfolioDailySnapshot {
	return model.PortfolioDailySnapshot{
		PortfolioID:    s.PortfolioID,
		Date:           s.Date,
		TotalEquity:    s.TotalEquity,
		CashBalance:    s.CashBalance,
		NetCashFlow:    s.NetCashFlow,
		DailyReturnPct: s.DailyReturnPct,
	}
}
