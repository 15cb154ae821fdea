package screening

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/remessas/screening-service/internal/domain"
	"github.com/remessas/screening-service/internal/pkg/logger"
	"github.com/remessas/screening-service/internal/pkg/metrics"
)

// Rule evaluation order. Reasons and matched tags in a ScreeningResult
// follow this order regardless of which rule finishes first.
const (
	ruleSanctions = iota
	ruleCountry
	ruleVelocity
	ruleAmount
	ruleStructuring
	ruleCount
)

// HistoryStore is the history log the engine appends to and the
// time-windowed rules read from.
type HistoryStore interface {
	HistoryReader
	Append(tx domain.StoredTransaction)
	AppendAudit(entry domain.AuditEntry)
}

// Engine orchestrates transaction screening through all compliance rules.
// Reference data (sanctions list, high-risk countries) is read-only for
// the engine's lifetime; the rules configuration is replaceable as a whole
// unit via ReplaceRules.
type Engine struct {
	sanctionsList []string
	highRisk      map[string]struct{}
	store         HistoryStore

	rulesMu sync.RWMutex
	rules   domain.RulesConfig

	log       *logger.Logger
	collector *metrics.Collector
}

// NewEngine creates a screening engine. The collector may be nil when
// metrics are not wanted, e.g. in tests.
func NewEngine(
	sanctionsList []string,
	highRiskCountries []string,
	store HistoryStore,
	rules domain.RulesConfig,
	log *logger.Logger,
	collector *metrics.Collector,
) *Engine {
	highRisk := make(map[string]struct{}, len(highRiskCountries))
	for _, code := range highRiskCountries {
		highRisk[strings.ToUpper(strings.TrimSpace(code))] = struct{}{}
	}

	return &Engine{
		sanctionsList: sanctionsList,
		highRisk:      highRisk,
		store:         store,
		rules:         rules,
		log:           log.Named("screening_engine"),
		collector:     collector,
	}
}

// Rules returns a copy of the rules configuration currently in effect.
func (e *Engine) Rules() domain.RulesConfig {
	e.rulesMu.RLock()
	defer e.rulesMu.RUnlock()
	return e.rules
}

// ReplaceRules swaps the whole rules configuration after validating it.
// In-flight screenings keep the snapshot they started with; every screening
// after the swap observes the new thresholds. An invalid config is rejected
// and the previous one stays in effect.
func (e *Engine) ReplaceRules(cfg domain.RulesConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	e.rulesMu.Lock()
	e.rules = cfg
	e.rulesMu.Unlock()

	e.log.RulesReplaced()
	if e.collector != nil {
		e.collector.ObserveRulesReplacement()
	}
	return nil
}

// Screen runs a single transaction through every compliance rule, scores
// the outcomes, persists the result to history and the audit log, and
// returns the decision.
//
// All five rules always run; there is no short-circuit before scoring, so
// reasons and matched tags reflect every triggered check even when one is
// redundant with a denial. The rules are pure readers and evaluate
// concurrently; their outcomes are assembled in fixed rule order. The only
// error Screen can return is a context cancellation.
func (e *Engine) Screen(ctx context.Context, req domain.TransactionRequest) (domain.ScreeningResult, error) {
	start := time.Now()
	txID := uuid.New()
	rules := e.Rules()

	e.log.ScreeningStarted(txID.String(), req.SenderName)

	outcomes := make([]domain.RuleOutcome, ruleCount)
	g, gctx := errgroup.WithContext(ctx)

	run := func(slot int, eval func() domain.RuleOutcome) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[slot] = eval()
			return nil
		})
	}

	run(ruleSanctions, func() domain.RuleOutcome {
		return CheckSanctions(req.SenderName, req.RecipientName, e.sanctionsList, rules.FuzzyMatchThreshold)
	})
	run(ruleCountry, func() domain.RuleOutcome {
		return CheckCountry(req.DestinationCountry, e.highRisk)
	})
	run(ruleVelocity, func() domain.RuleOutcome {
		return CheckVelocity(req.SenderName, req.Timestamp, e.store, rules.VelocityWindowMinutes, rules.VelocityThreshold)
	})
	run(ruleAmount, func() domain.RuleOutcome {
		return CheckAmount(req.Amount, rules.AmountThreshold)
	})
	run(ruleStructuring, func() domain.RuleOutcome {
		return CheckStructuring(req.SenderName, req.Amount, req.Timestamp, e.store,
			rules.StructuringWindowMinutes, rules.StructuringMinCount, rules.StructuringAmountVariance)
	})

	if err := g.Wait(); err != nil {
		return domain.ScreeningResult{}, err
	}

	score, decision, reasons, matched := Aggregate(outcomes)

	if outcomes[ruleSanctions].Triggered() {
		e.log.SanctionsHit(txID.String(), outcomes[ruleSanctions].Reasons)
	}

	result := domain.ScreeningResult{
		TransactionID: txID,
		Decision:      decision,
		RiskScore:     score,
		Reasons:       reasons,
		MatchedRules:  matched,
	}

	// Persist for future velocity/structuring lookups, then audit.
	e.store.Append(domain.StoredTransaction{
		TransactionID:      txID,
		SenderName:         req.SenderName,
		RecipientName:      req.RecipientName,
		Amount:             req.Amount,
		Currency:           req.Currency,
		DestinationCountry: req.DestinationCountry,
		Timestamp:          req.Timestamp,
		Decision:           decision,
		RiskScore:          score,
	})
	e.store.AppendAudit(domain.AuditEntry{
		TransactionID: txID,
		Timestamp:     req.Timestamp,
		Request:       req,
		Decision:      decision,
		RiskScore:     score,
		Reasons:       reasons,
		MatchedRules:  matched,
	})

	if e.collector != nil {
		e.collector.ObserveScreening(string(decision), score, time.Since(start))
	}
	e.log.ScreeningCompleted(txID.String(), string(decision), score, time.Since(start).Milliseconds())

	return result, nil
}

// ScreenBatch screens transactions sequentially, so later items in the
// batch see earlier ones in their velocity and structuring windows, and
// returns the per-transaction results plus an aggregate summary with a
// frequency ranking of the matched rule tags.
func (e *Engine) ScreenBatch(ctx context.Context, reqs []domain.TransactionRequest) (domain.BatchResult, error) {
	results := make([]domain.ScreeningResult, 0, len(reqs))

	for _, req := range reqs {
		result, err := e.Screen(ctx, req)
		if err != nil {
			return domain.BatchResult{}, err
		}
		results = append(results, result)
	}

	summary := summarize(results)
	e.log.BatchCompleted(summary.Total, summary.Approved, summary.Denied, summary.Review)

	return domain.BatchResult{Results: results, Summary: summary}, nil
}

// summarize counts decisions and ranks the five most common matched rule
// tags. Ties keep first-seen order, so the ranking is deterministic.
func summarize(results []domain.ScreeningResult) domain.BatchSummary {
	summary := domain.BatchSummary{Total: len(results)}

	counts := make(map[string]int)
	order := []string{}
	for _, r := range results {
		switch r.Decision {
		case domain.DecisionApprove:
			summary.Approved++
		case domain.DecisionDeny:
			summary.Denied++
		case domain.DecisionReview:
			summary.Review++
		}
		for _, tag := range r.MatchedRules {
			if counts[tag] == 0 {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > 5 {
		order = order[:5]
	}
	summary.CommonRiskFactors = order

	return summary
}
