// Copyright 2026 UltimateRPA Tools
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package check

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/ultimaterpa/urpautils/pkg/bankaccount"
	"github.com/ultimaterpa/urpautils/pkg/birthnumber"
	"github.com/ultimaterpa/urpautils/pkg/companyid"
)

// 🎯 Kind names the identifier family a check belongs to
type Kind string

const (
	// KindBirthNumber checks a Czech rodné číslo
	KindBirthNumber Kind = "rc"
	// KindCompanyID checks a Czech IČO
	KindCompanyID Kind = "ico"
	// KindBankAccount checks a domestic bank account number
	KindBankAccount Kind = "account"
)

// ErrUnknownKind is returned for checks whose Kind has no validator.
var ErrUnknownKind = errors.New("unknown check kind")

// 📋 Check is a single identifier to validate
type Check struct {
	Kind  Kind
	Value string
	// Aux carries the account prefix for KindBankAccount, empty otherwise
	Aux string
}

// 📊 Result pairs a check with its outcome. Err is set only when the
// check could not be evaluated at all, not when the value is invalid.
type Result struct {
	Check Check
	Valid bool
	Err   error
}

// 🔍 Evaluate runs a single check against the validator for its kind
func Evaluate(ctx context.Context, c Check) Result {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("kind", string(c.Kind)).Str("value", c.Value).Msg("evaluating check")

	switch c.Kind {
	case KindBirthNumber:
		return Result{Check: c, Valid: birthnumber.Verify(ctx, c.Value)}

	case KindCompanyID:
		err := companyid.Validate(c.Value)
		switch {
		case err == nil:
			return Result{Check: c, Valid: true}
		case errors.Is(err, companyid.ErrChecksum), errors.Is(err, companyid.ErrInvalidInput):
			return Result{Check: c, Valid: false}
		default:
			return Result{Check: c, Err: errors.Errorf("validating company id: %w", err)}
		}

	case KindBankAccount:
		valid, err := bankaccount.Verify(c.Aux, c.Value)
		if err != nil {
			if errors.Is(err, bankaccount.ErrInvalidInput) {
				return Result{Check: c, Valid: false}
			}
			return Result{Check: c, Err: errors.Errorf("verifying bank account: %w", err)}
		}
		return Result{Check: c, Valid: valid}

	default:
		return Result{Check: c, Err: errors.Errorf("evaluating %q: %w", c.Kind, ErrUnknownKind)}
	}
}
