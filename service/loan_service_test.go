package service

import (
	"errors"
	"testing"

	"github.com/dvillagrablanco/inmova-app-sub018/domain"
)

func TestCalculateLoan_WithInterest(t *testing.T) {

	service := NewLoanService()

	input := domain.LoanTerms{
		Principal:          10000,
		AnnualInterestRate: 0.12,
		TermYears:          2,
	}

	result, err := service.CalculateLoan(input, false)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.MonthlyPayment != 470.73 {
		t.Errorf("expected 470.73, got %.2f", result.MonthlyPayment)
	}

	if result.AnnualDebtService != 5648.82 {
		t.Errorf("expected 5648.82, got %.2f", result.AnnualDebtService)
	}

	if result.Schedule != nil {
		t.Errorf("schedule should be omitted")
	}
}

func TestCalculateLoan_ZeroInterest(t *testing.T) {

	service := NewLoanService()

	input := domain.LoanTerms{
		Principal:          1200,
		AnnualInterestRate: 0,
		TermYears:          1,
	}

	result, err := service.CalculateLoan(input, true)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := 100.0
	if result.MonthlyPayment != expected {
		t.Errorf("expected %.2f, got %.2f", expected, result.MonthlyPayment)
	}

	if len(result.Schedule) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(result.Schedule))
	}

	if result.Schedule[11].RemainingBalance != 0 {
		t.Errorf("expected final balance 0, got %.2f", result.Schedule[11].RemainingBalance)
	}
}

func TestCalculateLoan_InvalidRate(t *testing.T) {

	service := NewLoanService()

	input := domain.LoanTerms{
		Principal:          1000,
		AnnualInterestRate: -0.01,
		TermYears:          10,
	}

	_, err := service.CalculateLoan(input, false)

	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCalculateLoan_InvalidTerm(t *testing.T) {

	service := NewLoanService()

	input := domain.LoanTerms{
		Principal:          1000,
		AnnualInterestRate: 0.1,
		TermYears:          0,
	}

	_, err := service.CalculateLoan(input, false)

	if err == nil {
		t.Fatalf("expected error for invalid term")
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRoundTo2Decimals(t *testing.T) {
	if got := roundTo2Decimals(470.7347); got != 470.73 {
		t.Errorf("expected 470.73, got %v", got)
	}
	if got := roundTo2Decimals(1.005); got != 1.01 {
		t.Errorf("expected 1.01, got %v", got)
	}
}
