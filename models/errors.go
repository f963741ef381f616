// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrEnvelopeNotDecoded is returned by [Envelope.DecodeData] when the
// envelope was built in memory rather than decoded from JSON.
var ErrEnvelopeNotDecoded = errors.New("envelope data is not raw JSON")

// ErrInvalidTokenSubject is returned by [Token.GetUserID] when the subject
// claim is not a positive decimal user id.
var ErrInvalidTokenSubject = errors.New("token subject is not a user id")
