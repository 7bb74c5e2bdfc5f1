package repository

import "chainquest_backend/internal/model"

// Adventure chapters, in unlock order: chapter n is playable only after
// chapter n-1 is completed.
var chapters = []model.Chapter{
	{
		ID:          "chapter_1",
		Title:       "The Lost Wallet",
		Description: "Your journey begins when you discover a mysterious wallet address. Learn the fundamentals of blockchain and wallets to recover it.",
		Icon:        "🔑",
		Color:       "from-blue-500 to-cyan-500",
		Intro:       "You wake up to a cryptic note: \"The key to your fortune lies in understanding the chain.\" Satoshi Sage, a wise mentor, appears to guide your quest.",
		Conclusion:  "You've recovered the lost wallet! But a strange smart contract is attached to the coins inside... The quest continues in Chapter 2.",
		Challenges: []model.Challenge{
			{
				ID:        "ch1_q1",
				Narrative: "Satoshi Sage gestures to a shimmering network of lights. \"Before we find that wallet, you must understand what blockchain truly is.\"",
				Question:  "What is the fundamental feature that makes blockchain secure and trustworthy?",
				Choices: []string{
					"It's controlled by a single powerful company",
					"It's a decentralized, distributed ledger",
					"It uses the fastest servers in the world",
					"It requires government approval",
				},
				Correct:  1,
				XPReward: 25,
				Success:  "Excellent! A decentralized, distributed ledger that no single entity controls - that is blockchain's true power.",
				Failure:  "Not quite. Blockchain's strength is decentralization: a ledger everyone can verify but no one controls.",
			},
			{
				ID:        "ch1_q2",
				Narrative: "The Sage holds out two shimmering keys, one golden, one silver. \"Wallets use a pair of keys. Which must never leave your hands?\"",
				Question:  "Which key in a cryptocurrency wallet must be kept absolutely secret?",
				Choices: []string{
					"The public key",
					"The private key",
					"Both keys should be shared",
					"Neither key matters",
				},
				Correct:  1,
				XPReward: 30,
				Success:  "Perfect. Your private key is the key to your house - guard it with your life. Not your keys, not your crypto!",
				Failure:  "Careful! The PRIVATE key controls your funds and must stay secret. The public key is just your address.",
			},
			{
				ID:        "ch1_q3",
				Narrative: "The Crypto Guardian materializes from the shadows. \"Many have lost fortunes to carelessness. Prove you know how to keep coins safe.\"",
				Question:  "What is the most secure way to store cryptocurrency for long-term holding?",
				Choices: []string{
					"Keep it in an email",
					"Hardware wallet or paper wallet (cold storage)",
					"Post it on social media",
					"Share it with friends",
				},
				Correct:  1,
				XPReward: 35,
				Success:  "Wise choice. Cold storage keeps your keys offline, like a vault rather than a pocket. The path to the lost wallet is clear!",
				Failure:  "That would be disastrous! Keep private keys offline in a hardware or paper wallet - never in email or online.",
			},
		},
		CompletionXP: 50,
		CompletionBadge: &model.Badge{
			ID: "wallet_wizard", Name: "Wallet Wizard", Icon: "🔐",
			Description: "Mastered wallet security", XPReward: 50,
		},
	},
	{
		ID:          "chapter_2",
		Title:       "The Smart Contract Mystery",
		Description: "The coins are locked in a smart contract. Solve the contract's puzzles to unlock your treasure.",
		Icon:        "📜",
		Color:       "from-purple-500 to-pink-500",
		Intro:       "The recovered coins are sealed behind self-executing code. Vitalik Venture smirks: \"Only those who understand the contract may claim its treasure.\"",
		Conclusion:  "The contract unlocks with a satisfying click. Your treasure grows - and a glittering DeFi realm beckons in Chapter 3.",
		Challenges: []model.Challenge{
			{
				ID:        "ch2_q1",
				Narrative: "Glowing code scrolls across the contract's surface. \"First riddle,\" says Vitalik. \"What am I?\"",
				Question:  "What is a smart contract?",
				Choices: []string{
					"A legal document for crypto",
					"Self-executing code on the blockchain",
					"A type of cryptocurrency",
					"A wallet feature",
				},
				Correct:  1,
				XPReward: 30,
				Success:  "Right! Self-executing code that runs exactly as written, no intermediaries needed.",
				Failure:  "Not this time. A smart contract is code on the blockchain that executes itself when its conditions are met.",
			},
			{
				ID:        "ch2_q2",
				Narrative: "\"Second riddle: suppose the author regrets what they deployed...\"",
				Question:  "Once deployed, can a smart contract be modified?",
				Choices: []string{
					"Yes, anytime by anyone",
					"No, they are immutable once deployed",
					"Only by the government",
					"Only on weekends",
				},
				Correct:  1,
				XPReward: 35,
				Success:  "Immutable indeed. Once on-chain, the code is permanent - which is why audits matter so much.",
				Failure:  "Deployed contracts are immutable. No edits, no exceptions - the chain remembers everything.",
			},
			{
				ID:        "ch2_q3",
				Narrative: "The contract hums, demanding payment for every operation. \"Final riddle: what fuels me?\"",
				Question:  "What is 'gas' in Ethereum?",
				Choices: []string{
					"Fuel for mining machines",
					"The fee paid to execute transactions",
					"A type of token",
					"A wallet feature",
				},
				Correct:  1,
				XPReward: 40,
				Success:  "Correct! Gas is the fee that pays validators to execute your transactions and keeps the network spam-free.",
				Failure:  "Gas is the execution fee - every operation on Ethereum costs a little, paid to those who run the network.",
			},
		},
		CompletionXP: 75,
		CompletionBadge: &model.Badge{
			ID: "contract_master", Name: "Contract Master", Icon: "📜",
			Description: "Mastered smart contracts", XPReward: 75,
		},
	},
	{
		ID:          "chapter_3",
		Title:       "The DeFi Treasure",
		Description: "Navigate the world of DeFi to multiply your treasure and become a true blockchain master.",
		Icon:        "💎",
		Color:       "from-green-500 to-emerald-500",
		Intro:       "DeFi Delilah leads you into a realm of pools, farms, and protocols. \"Here, your coins can work for you - if you know the rules.\"",
		Conclusion:  "Your treasure has multiplied and the realm bows to a new blockchain master. The quest is complete - for now.",
		Challenges: []model.Challenge{
			{
				ID:        "ch3_q1",
				Narrative: "\"Before you trade a single token,\" Delilah says, \"tell me what this realm is called.\"",
				Question:  "What does DeFi stand for?",
				Choices: []string{
					"Digital Finance",
					"Decentralized Finance",
					"Defined Finance",
					"Distributed Finance",
				},
				Correct:  1,
				XPReward: 35,
				Success:  "Decentralized Finance - banking without the bank, built from open protocols.",
				Failure:  "DeFi is Decentralized Finance: financial services rebuilt on-chain, without traditional intermediaries.",
			},
			{
				ID:        "ch3_q2",
				Narrative: "She points at a swirling pool of paired tokens exchanging endlessly.",
				Question:  "What is a liquidity pool?",
				Choices: []string{
					"A swimming pool for crypto",
					"Tokens locked in a smart contract for trading",
					"A type of wallet",
					"A mining technique",
				},
				Correct:  1,
				XPReward: 40,
				Success:  "Exactly - pooled tokens locked in a contract so traders always have a counterparty.",
				Failure:  "A liquidity pool is tokens locked in a smart contract that lets anyone trade against them.",
			},
			{
				ID:        "ch3_q3",
				Narrative: "\"One last secret,\" Delilah grins, \"how the patient ones grow their treasure.\"",
				Question:  "What is 'yield farming'?",
				Choices: []string{
					"Growing vegetables with crypto",
					"Earning rewards by providing liquidity",
					"Mining cryptocurrency",
					"Buying NFTs",
				},
				Correct:  1,
				XPReward: 45,
				Success:  "You've got it - supply liquidity, earn rewards. Use it wisely, master of DeFi!",
				Failure:  "Yield farming means providing liquidity to protocols in exchange for rewards.",
			},
		},
		CompletionXP: 100,
		CompletionBadge: &model.Badge{
			ID: "defi_explorer", Name: "DeFi Explorer", Icon: "💎",
			Description: "Conquered the DeFi realm", XPReward: 100,
		},
	},
}
