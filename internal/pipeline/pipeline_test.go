// Copyright Akcero Labs Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/akcero/blueprint-engine/internal/catalog"
)

type event struct {
	step  string
	state string
}

type recorder struct {
	mu     sync.Mutex
	events []event
}

func (r *recorder) observe(step, state string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{step, state})
}

func (r *recorder) index(step, state string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.events {
		if e.step == step && e.state == state {
			return i
		}
	}
	return -1
}

func TestRunProducesFullBlueprint(t *testing.T) {
	r := New(catalog.Default(), nil, nil, nil)

	bp, err := r.Run(context.Background(), "A regulated marketplace matching clinics with equipment vendors.", Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if bp.Idea.Problem == "" || bp.Idea.Narrative == "" {
		t.Error("idea facet incomplete")
	}
	if bp.Business.Model == "" || len(bp.Business.RevenueStreams) == 0 {
		t.Error("business facet incomplete")
	}
	if bp.Tech.Architecture == "" || len(bp.Tech.Stack) == 0 {
		t.Error("tech facet incomplete")
	}
	if len(bp.Design.Principles) == 0 || bp.Design.InspirationReferences == "" {
		t.Error("design facet incomplete")
	}
	if bp.Market.Segment == "" || bp.Market.Positioning == "" {
		t.Error("market facet incomplete")
	}
	if len(bp.Timeline.Phases) != 5 || bp.Timeline.TotalDurationWeeks == 0 {
		t.Error("timeline facet incomplete")
	}
	if bp.Summary == "" {
		t.Error("summary empty")
	}
	if bp.Pitch != "" {
		t.Errorf("pitch generated without pitch mode: %q", bp.Pitch)
	}
	if bp.Timeline.BusinessAlignment != bp.Business.Model {
		t.Error("timeline business alignment diverges from business model")
	}
	if bp.Timeline.TechAlignment != bp.Tech.Architecture {
		t.Error("timeline tech alignment diverges from architecture")
	}
}

func TestRunClimateHardwareMarketplace(t *testing.T) {
	r := New(catalog.Default(), nil, nil, nil)

	bp, err := r.Run(context.Background(),
		"A marketplace for climate-tech hardware sensors connecting regulated enterprise buyers and vendors.", Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, attr := range []string{"marketplace", "hardware", "regulatory", "enterprise"} {
		if !bp.Idea.Attributes[attr] {
			t.Errorf("attribute %s not detected", attr)
		}
	}
	if bp.Idea.Complexity != "complex" {
		t.Errorf("complexity = %q, want complex", bp.Idea.Complexity)
	}
	if bp.Idea.Domain != "Sustainability & Climate" {
		t.Errorf("domain = %q", bp.Idea.Domain)
	}

	hasCommission := false
	for _, rs := range bp.Business.RevenueStreams {
		if strings.Contains(rs, "commission") {
			hasCommission = true
		}
	}
	if !hasCommission {
		t.Error("revenue streams lack a marketplace commission entry")
	}
	hasEnterprisePartner := false
	for _, p := range bp.Business.Partners {
		if strings.Contains(p, "Enterprise") {
			hasEnterprisePartner = true
		}
	}
	if !hasEnterprisePartner {
		t.Error("partners lack an enterprise entry")
	}
}

func TestRunPitchMode(t *testing.T) {
	r := New(catalog.Default(), nil, nil, nil)

	bp, err := r.Run(context.Background(), "A fintech compliance assistant.", Options{Pitch: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if bp.Pitch == "" {
		t.Error("pitch mode produced no pitch")
	}
	if !strings.Contains(bp.Pitch, "System Intent") {
		t.Errorf("fallback pitch format unexpected: %q", bp.Pitch)
	}
}

func TestRunEmptyInputUsesPlaceholder(t *testing.T) {
	r := New(catalog.Default(), nil, nil, nil)

	bp, err := r.Run(context.Background(), "   ", Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if bp.Idea.Problem == "" || bp.Summary == "" {
		t.Error("placeholder run produced incomplete blueprint")
	}
}

func TestRunDeterministicWithFallback(t *testing.T) {
	r := New(catalog.Default(), nil, nil, nil)
	ctx := context.Background()
	idea := "A community learning platform for developers."

	a, err := r.Run(ctx, idea, Options{Pitch: true})
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	b, err := r.Run(ctx, idea, Options{Pitch: true})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("fallback runs are not byte-identical")
	}
}

func TestObserverOrdering(t *testing.T) {
	rec := &recorder{}
	r := New(catalog.Default(), nil, rec.observe, nil)

	if _, err := r.Run(context.Background(), "An analytics toolkit.", Options{}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	ideaDone := rec.index(StepIdea, StateCompleted)
	if rec.index(StepIdea, StateRunning) != 0 {
		t.Error("idea running was not the first event")
	}
	for _, step := range []string{StepBusiness, StepTech} {
		if i := rec.index(step, StateRunning); i < ideaDone {
			t.Errorf("%s started before idea completed", step)
		}
	}
	stageOneDone := rec.index(StepBusiness, StateCompleted)
	if i := rec.index(StepTech, StateCompleted); i > stageOneDone {
		stageOneDone = i
	}
	for _, step := range []string{StepDesign, StepMarket} {
		if i := rec.index(step, StateRunning); i < stageOneDone {
			t.Errorf("%s started before stage one barrier", step)
		}
	}
	last := rec.index(StepTimeline, StateCompleted)
	rec.mu.Lock()
	total := len(rec.events)
	rec.mu.Unlock()
	if last != total-1 {
		t.Error("timeline completion was not the final event")
	}
}

func TestObserverPanicDoesNotFailRun(t *testing.T) {
	r := New(catalog.Default(), nil, func(step, state string) {
		panic("observer exploded")
	}, nil)

	if _, err := r.Run(context.Background(), "A journaling helper.", Options{}); err != nil {
		t.Fatalf("Run failed due to observer panic: %v", err)
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	r := New(catalog.Default(), nil, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Run(ctx, "A sensor fleet manager.", Options{}); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
