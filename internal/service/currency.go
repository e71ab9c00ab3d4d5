package service

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"

	"paybox/internal/entity"
	"paybox/pkg/logger"
	"paybox/pkg/metric"
)

const (
	CurrencySourceRemote  = "remote"
	CurrencySourceCache   = "cache"
	CurrencySourceBuiltin = "builtin"
)

var _builtinCurrencyCodes = map[string]string{
	"USD": "840",
	"GBP": "826",
	"EUR": "978",
}

var _ CurrencyCodeResolver = (*CurrencyResolver)(nil)

type iso4217Document struct {
	Entries []iso4217Entry `xml:"CcyTbl>CcyNtry"`
}

type iso4217Entry struct {
	Alpha   string `xml:"Ccy"`
	Numeric string `xml:"CcyNbr"`
}

// CurrencyResolver maps ISO 4217 alphabetic codes to numeric codes. The remote
// list is preferred, the last stored copy is used when it is unreachable.
type CurrencyResolver struct {
	fetcher CurrencyFetcher
	store   CurrencyStore
	logger  logger.Logger
	metrics metric.Payment
}

func NewCurrencyResolver(
	fetcher CurrencyFetcher,
	store CurrencyStore,
	logger logger.Logger,
	metrics metric.Payment,
) *CurrencyResolver {
	return &CurrencyResolver{
		fetcher: fetcher,
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

func (cr *CurrencyResolver) Resolve(ctx context.Context, alpha string) (string, error) {
	const op = "service.CurrencyResolver.Resolve"
	log := cr.logger.Ctx(ctx)

	entries, source, err := cr.loadTable(ctx)
	if err != nil {
		log.LogAttrs(ctx, logger.WarnLevel, "ISO 4217 list unavailable",
			logger.String("op", op),
			logger.Err(err),
		)
	}

	for _, entry := range entries {
		if entry.Alpha == alpha && entry.Numeric != "" {
			cr.metrics.CurrencyResolved(source)
			return entry.Numeric, nil
		}
	}

	if numeric, ok := _builtinCurrencyCodes[alpha]; ok {
		cr.metrics.CurrencyResolved(CurrencySourceBuiltin)
		return numeric, nil
	}

	return "", fmt.Errorf("%s: %w %q", op, entity.ErrCurrencyResolution, alpha)
}

func (cr *CurrencyResolver) loadTable(ctx context.Context) ([]iso4217Entry, string, error) {
	log := cr.logger.Ctx(ctx)

	data, err := cr.fetcher.Fetch(ctx)
	if err == nil {
		var entries []iso4217Entry
		if entries, err = parseISO4217(data); err == nil {
			if saveErr := cr.store.Save(data); saveErr != nil {
				log.LogAttrs(ctx, logger.WarnLevel, "failed to refresh ISO 4217 local copy",
					logger.Err(saveErr),
				)
			}
			return entries, CurrencySourceRemote, nil
		}
	}

	log.LogAttrs(ctx, logger.InfoLevel, "falling back to ISO 4217 local copy",
		logger.Err(err),
	)

	data, loadErr := cr.store.Load()
	if loadErr != nil {
		return nil, "", errors.Join(err, loadErr)
	}

	entries, parseErr := parseISO4217(data)
	if parseErr != nil {
		return nil, "", errors.Join(err, parseErr)
	}

	return entries, CurrencySourceCache, nil
}

func parseISO4217(data []byte) ([]iso4217Entry, error) {
	var doc iso4217Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse ISO 4217 list: %w", err)
	}
	if len(doc.Entries) == 0 {
		return nil, errors.New("parse ISO 4217 list: no currency entries")
	}
	return doc.Entries, nil
}
