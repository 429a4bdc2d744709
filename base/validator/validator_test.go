package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
	v *CustomValidator
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) SetupSuite() {
	s.v = NewCustomValidator(validator.New()).(*CustomValidator)
}

func (s *ValidatorTestSuite) TestMoneyRule() {
	type payload struct {
		Amount float64 `validate:"money"`
	}

	tests := []struct {
		desc    string
		amount  float64
		expPass bool
	}{
		{"whole dollars", 120, true},
		{"cents", 120.73, true},
		{"zero", 0, false},
		{"negative", -5, false},
		{"sub-cent precision", 10.001, false},
	}

	for _, t := range tests {
		err := s.v.Validate(payload{Amount: t.amount})
		if t.expPass {
			s.NoError(err, t.desc)
		} else {
			s.Error(err, t.desc)
		}
	}
}
