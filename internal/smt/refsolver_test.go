package smt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefSolverAcceptsMatchingOrder(t *testing.T) {
	s := NewRefSolver()
	s.DeclareReal("n")
	n := NewVar("n")
	lhs := Mul(NewVar("c_f_0"), n)
	rhs := Add(Mul(NewVar("c_g_0"), n), NewConst(1))
	s.AssertForall([]string{"n"}, &Implies{Antecedent: &Ge{Left: n, Right: NewConst(0)}, Consequent: &Le{Left: lhs, Right: rhs}})

	status, err := s.CheckSat()
	assert.NoError(t, err)
	assert.Equal(t, Sat, status)
}

func TestRefSolverRejectsHigherOrderLHS(t *testing.T) {
	s := NewRefSolver()
	n := NewVar("n")
	lhs := Raise(n, 2)
	rhs := n
	s.AssertForall([]string{"n"}, &Le{Left: lhs, Right: rhs})

	status, err := s.CheckSat()
	assert.NoError(t, err)
	assert.Equal(t, Unsat, status)
}

func TestRefSolverExponentialDominatesPolynomial(t *testing.T) {
	n := NewVar("n")
	lhs := Raise(n, 5)
	rhs := NewVar("pow_2_n")
	s := NewRefSolver()
	s.AssertForall([]string{"n"}, &Le{Left: lhs, Right: rhs})

	status, err := s.CheckSat()
	assert.NoError(t, err)
	assert.Equal(t, Sat, status)
}

func TestRefSolverUnknownWithNoObligation(t *testing.T) {
	s := NewRefSolver()
	_, err := s.CheckSat()
	assert.Error(t, err)
}
