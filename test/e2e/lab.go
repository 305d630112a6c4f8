package e2e

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Azure/ai-gateway-lab/pkg/check"
)

var _ = Describe("Lab", func() {
	It("spreads gateway traffic across both regions", func(ctx context.Context) {
		Expect(checker.LoadBalance(ctx, check.DefaultLoadBalanceRequests)).To(Succeed())
	})

	It("answers the responses API on every access path", func(ctx context.Context) {
		Expect(checker.Responses(ctx)).To(Succeed())
	})

	It("grants data plane access to the configured identity", func(ctx context.Context) {
		Expect(checker.Access(ctx)).To(Succeed())
	})

	It("holds exactly the tester role table", func(ctx context.Context) {
		if testerPrincipalID == "" {
			Skip("AILAB_TESTER_PRINCIPAL_ID not set")
		}

		Expect(checker.Roles(ctx, testerPrincipalID, true)).To(Succeed())
	})
})
