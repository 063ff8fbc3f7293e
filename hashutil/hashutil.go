// Copyright 2026 The go-misc Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hashutil hashes values stably from one process run to the next,
// for cache keys and change detection. Values are canonicalized to JSON
// (map keys sorted by encoding/json) before hashing, so two structurally
// equal values always hash alike.
package hashutil

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ledona/go-misc/jsonutil"
)

func digest(v any) ([md5.Size]byte, error) {
	compat, err := jsonutil.Compatible(v)
	if err != nil {
		return [md5.Size]byte{}, fmt.Errorf("hashutil: canonicalizing value: %w", err)
	}
	canonical, err := json.Marshal(compat)
	if err != nil {
		return [md5.Size]byte{}, fmt.Errorf("hashutil: encoding value: %w", err)
	}
	return md5.Sum(canonical), nil
}

// ConstantHash returns a stable hash of v as a big integer.
func ConstantHash(v any) (*big.Int, error) {
	sum, err := digest(v)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(sum[:]), nil
}

// ConstantHashHex returns a stable hash of v as a hex string.
func ConstantHashHex(v any) (string, error) {
	sum, err := digest(v)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum[:]), nil
}
