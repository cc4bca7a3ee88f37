// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Deed Ledger Authors.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/deedledger/registryd/tokenid"
)

// the placeholder replaced by the hex token id
const tokenIdPlaceholder = "{tokenid}"

// metadata provider expanding a URI template
//
// "https://deeds.example.com/meta/{tokenid}" resolves each token to
// the gateway document named by its hex id
type uriTemplateProvider struct {
	template string
}

func (p *uriTemplateProvider) TokenURI(tokenId tokenid.TokenID) (string, error) {
	return strings.Replace(p.template, tokenIdPlaceholder, tokenId.String(), 1), nil
}
