package repository

import "chainquest_backend/internal/model"

// The lesson catalog. Immutable; indexed once by NewCatalogRepository.
var modules = []model.Module{
	{
		ID:          "blockchain",
		Title:       "Blockchain Fundamentals",
		Description: "Learn the core concepts of blockchain technology",
		Icon:        "cube",
		Color:       "from-blue-500 to-cyan-500",
		Lessons: []model.Lesson{
			{
				ID:       "blockchain-1",
				Title:    "What is Blockchain?",
				Duration: "5 min",
				XP:       20,
				Content: `
# What is Blockchain?

A **blockchain** is a digital ledger of transactions that is duplicated and distributed across a network of computers.

## Key Characteristics

- **Decentralized**: No single entity controls the network
- **Immutable**: Once data is recorded, it cannot be changed
- **Transparent**: Anyone can verify transactions
- **Secure**: Protected by cryptography

## How It Works

1. A transaction is requested
2. The transaction is broadcast to a network of computers (nodes)
3. Nodes validate the transaction using algorithms
4. Verified transactions are combined into a block
5. The new block is added to the existing blockchain
6. The transaction is complete

## Real-World Analogy

Think of blockchain like a Google Doc that everyone can view and add to, but no one can edit or delete what's already there. Every change is recorded permanently.
`,
				Quiz: []model.QuizQuestion{
					{
						Question: "What makes blockchain 'immutable'?",
						Options: []string{
							"It can be easily changed",
							"Once data is recorded, it cannot be altered",
							"Only admins can modify it",
							"It deletes old data automatically",
						},
						Correct: 1,
					},
					{
						Question: "What is a 'node' in blockchain?",
						Options: []string{
							"A type of cryptocurrency",
							"A computer on the network that validates transactions",
							"A digital wallet",
							"A smart contract",
						},
						Correct: 1,
					},
				},
			},
			{
				ID:       "blockchain-2",
				Title:    "Blocks and Chains",
				Duration: "7 min",
				XP:       20,
				Content: `
# Understanding Blocks and Chains

## What is a Block?

A block is a container for data. Each block contains:

- **Block Header**: Metadata about the block
- **Transaction Data**: The actual transactions
- **Hash**: A unique fingerprint of the block
- **Previous Hash**: Links to the prior block

## The Chain

Blocks are linked together using cryptographic hashes, forming a chain.

## Why Hashes Matter

If anyone tries to change data in an old block:
1. The block's hash changes
2. This breaks the link to the next block
3. All subsequent blocks become invalid
4. The network rejects the tampering
`,
				Quiz: []model.QuizQuestion{
					{
						Question: "What links blocks together in a blockchain?",
						Options: []string{
							"Serial numbers",
							"Cryptographic hashes",
							"Timestamps only",
							"User signatures",
						},
						Correct: 1,
					},
				},
			},
			{
				ID:       "blockchain-3",
				Title:    "Consensus Mechanisms",
				Duration: "8 min",
				XP:       20,
				Content: `
# Consensus Mechanisms

How do thousands of computers agree on what's true? Through **consensus mechanisms**!

## Proof of Work (PoW)
- Miners compete to solve complex puzzles
- First to solve adds the next block
- Very energy-intensive

## Proof of Stake (PoS)
- Validators stake cryptocurrency
- Much more energy-efficient
- Stakers earn rewards
`,
				Quiz: []model.QuizQuestion{
					{
						Question: "Which consensus mechanism does Ethereum currently use?",
						Options: []string{
							"Proof of Work",
							"Proof of Stake",
							"Proof of Authority",
							"Proof of History",
						},
						Correct: 1,
					},
				},
			},
		},
	},
	{
		ID:          "wallet",
		Title:       "Crypto Wallets",
		Description: "Master the art of storing and managing cryptocurrency",
		Icon:        "wallet",
		Color:       "from-purple-500 to-pink-500",
		Lessons: []model.Lesson{
			{
				ID:       "wallet-1",
				Title:    "Wallet Basics",
				Duration: "6 min",
				XP:       20,
				Content: `
# Crypto Wallets Explained

A **crypto wallet** stores your private keys - the passwords that prove you own your crypto.

## Public Key vs Private Key

- **Public Key** = Your email address (safe to share)
- **Private Key** = Your password (NEVER share!)

## Types of Wallets

### Hot Wallets (Connected to Internet)
- Mobile apps (Trust Wallet, MetaMask Mobile)
- Browser extensions (MetaMask)

### Cold Wallets (Offline Storage)
- Hardware wallets (Ledger, Trezor)
- Paper wallets
`,
				Quiz: []model.QuizQuestion{
					{
						Question: "What does a crypto wallet actually store?",
						Options: []string{
							"Your cryptocurrency coins",
							"Your private keys",
							"Your bank account info",
							"Your email address",
						},
						Correct: 1,
					},
				},
			},
		},
	},
	{
		ID:          "smart-contract",
		Title:       "Smart Contracts",
		Description: "Discover self-executing code on the blockchain",
		Icon:        "code",
		Color:       "from-green-500 to-emerald-500",
		Lessons: []model.Lesson{
			{
				ID:       "smart-contract-1",
				Title:    "Smart Contract Basics",
				Duration: "6 min",
				XP:       20,
				Content: `
# What Are Smart Contracts?

**Smart contracts** are self-executing programs stored on a blockchain that automatically run when predetermined conditions are met.

## Key Properties

- **Automatic**: Execute without intermediaries
- **Immutable**: Cannot be changed once deployed
- **Transparent**: Code is visible on blockchain
- **Trustless**: No need to trust counterparties
`,
				Quiz: []model.QuizQuestion{
					{
						Question: "What triggers a smart contract to execute?",
						Options: []string{
							"Manual approval from developers",
							"Predetermined conditions being met",
							"Government authorization",
							"Bank verification",
						},
						Correct: 1,
					},
				},
			},
		},
	},
	{
		ID:          "defi",
		Title:       "DeFi Essentials",
		Description: "Explore decentralized finance protocols and strategies",
		Icon:        "chart",
		Color:       "from-orange-500 to-red-500",
		Lessons: []model.Lesson{
			{
				ID:       "defi-1",
				Title:    "What is DeFi?",
				Duration: "6 min",
				XP:       20,
				Content: `
# Decentralized Finance (DeFi)

**DeFi** refers to financial services built on blockchain that operate without traditional intermediaries like banks.

## Core DeFi Services

1. **Lending & Borrowing** - Deposit crypto to earn interest
2. **Decentralized Exchanges (DEXs)** - Trade tokens without a central authority
3. **Yield Farming** - Provide liquidity for rewards
4. **Staking** - Lock tokens to earn rewards
`,
				Quiz: []model.QuizQuestion{
					{
						Question: "What does TVL stand for in DeFi?",
						Options: []string{
							"Total Virtual Ledger",
							"Token Validation Layer",
							"Total Value Locked",
							"Trading Volume Limit",
						},
						Correct: 2,
					},
				},
			},
		},
	},
}
