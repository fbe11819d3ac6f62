package narrative

import "NarrativeScanner/internal/domain"

// IdeaTemplate is the static part of a build idea; the narrative reference is
// bound when the template is instantiated.
type IdeaTemplate struct {
	Title        string
	Description  string
	TargetMarket string
	Difficulty   domain.Difficulty
}

func (t IdeaTemplate) bind(narrative string) domain.BuildIdea {
	return domain.BuildIdea{
		Title:        t.Title,
		Description:  t.Description,
		NarrativeRef: narrative,
		TargetMarket: t.TargetMarket,
		Difficulty:   t.Difficulty,
	}
}

// Catalog maps narrative names to their idea templates. It is read-only once built.
type Catalog struct {
	templates map[string][]IdeaTemplate
	fillers   []IdeaTemplate
}

// NewCatalog copies the given tables into an immutable catalog.
func NewCatalog(templates map[string][]IdeaTemplate, fillers []IdeaTemplate) *Catalog {
	c := &Catalog{
		templates: make(map[string][]IdeaTemplate, len(templates)),
		fillers:   append([]IdeaTemplate(nil), fillers...),
	}
	for name, list := range templates {
		c.templates[name] = append([]IdeaTemplate(nil), list...)
	}
	return c
}

// Templates returns the ordered templates for a narrative; unknown names yield none.
func (c *Catalog) Templates(name string) []IdeaTemplate {
	return append([]IdeaTemplate(nil), c.templates[name]...)
}

// Fillers returns the generic ideas used to reach the minimum idea count.
func (c *Catalog) Fillers() []IdeaTemplate {
	return append([]IdeaTemplate(nil), c.fillers...)
}

// DefaultCatalog builds the built-in template table.
func DefaultCatalog() *Catalog {
	return NewCatalog(map[string][]IdeaTemplate{
		AIAgents: {
			{
				Title:        "Agent Wallet Guardrails",
				Description:  "Policy-enforcing smart wallet that caps spend, whitelists programs and logs every action an AI agent signs",
				TargetMarket: "AI agent developers",
				Difficulty:   domain.DifficultyHigh,
			},
			{
				Title:        "On-chain Agent Marketplace",
				Description:  "Registry where autonomous agents advertise services and get paid per task with escrowed settlement",
				TargetMarket: "Agent builders and DAOs",
				Difficulty:   domain.DifficultyHigh,
			},
			{
				Title:        "Agent Activity Explorer",
				Description:  "Dashboard that attributes transactions to known agent frameworks and tracks their PnL",
				TargetMarket: "Researchers and traders",
				Difficulty:   domain.DifficultyMedium,
			},
		},
		DePINExpansion: {
			{
				Title:        "DePIN Node Monitor",
				Description:  "Uptime and reward tracking for operators running hardware across several DePIN networks",
				TargetMarket: "DePIN node operators",
				Difficulty:   domain.DifficultyMedium,
			},
			{
				Title:        "DePIN Reward Aggregator",
				Description:  "Single claim flow that sweeps rewards from multiple networks into one wallet",
				TargetMarket: "Hardware contributors",
				Difficulty:   domain.DifficultyMedium,
			},
		},
		MemeCoinInfrastructure: {
			{
				Title:        "Launch Safety Scanner",
				Description:  "Checks new token launches for mint authority, holder concentration and liquidity locks before users ape in",
				TargetMarket: "Retail meme traders",
				Difficulty:   domain.DifficultyMedium,
			},
			{
				Title:        "Meme Community Toolkit",
				Description:  "Bundled bots for airdrops, holder verification and raid coordination for meme communities",
				TargetMarket: "Meme coin communities",
				Difficulty:   domain.DifficultyLow,
			},
		},
		LiquidStakingGrowth: {
			{
				Title:        "LST Yield Comparator",
				Description:  "Side-by-side APY, fee and depeg history for every liquid staking token",
				TargetMarket: "Stakers and treasuries",
				Difficulty:   domain.DifficultyLow,
			},
			{
				Title:        "LST Auto-Rebalancer",
				Description:  "Vault that rotates between liquid staking tokens to chase the best risk-adjusted yield",
				TargetMarket: "Passive DeFi users",
				Difficulty:   domain.DifficultyHigh,
			},
		},
		NFTInnovation: {
			{
				Title:        "Compressed NFT Loyalty Kit",
				Description:  "Merchant toolkit that issues compressed NFTs as loyalty passes at near-zero cost",
				TargetMarket: "Brands and merchants",
				Difficulty:   domain.DifficultyMedium,
			},
			{
				Title:        "NFT Royalty Analytics",
				Description:  "Tracks royalty enforcement and creator earnings across marketplaces",
				TargetMarket: "NFT creators",
				Difficulty:   domain.DifficultyLow,
			},
		},
		GamingConsumerApps: {
			{
				Title:        "Game Asset Bridge SDK",
				Description:  "SDK that lets game studios mint and sync in-game items without exposing wallets to players",
				TargetMarket: "Game studios",
				Difficulty:   domain.DifficultyHigh,
			},
			{
				Title:        "Mobile Onboarding Flow",
				Description:  "Drop-in embedded wallet and gas sponsorship for consumer mobile apps",
				TargetMarket: "Consumer app developers",
				Difficulty:   domain.DifficultyMedium,
			},
		},
		PaymentsPayFi: {
			{
				Title:        "Stablecoin Invoicing",
				Description:  "Invoices payable in USDC with automatic reconciliation to accounting software",
				TargetMarket: "Freelancers and SMBs",
				Difficulty:   domain.DifficultyMedium,
			},
			{
				Title:        "Cross-border Payroll",
				Description:  "Payroll rails that pay remote teams in stablecoins with local off-ramp partners",
				TargetMarket: "Remote-first companies",
				Difficulty:   domain.DifficultyHigh,
			},
			{
				Title:        "Merchant Payment Links",
				Description:  "Shareable payment links and QR codes settling instantly in stablecoins",
				TargetMarket: "Online merchants",
				Difficulty:   domain.DifficultyLow,
			},
		},
		DeFiPrimitives: {
			{
				Title:        "DeFi Position Health Bot",
				Description:  "Alerts on liquidation risk and funding changes across lending and perp protocols",
				TargetMarket: "Active DeFi users",
				Difficulty:   domain.DifficultyMedium,
			},
		},
		DeveloperToolingGrowth: {
			{
				Title:        "Program Test Harness",
				Description:  "Local fork-based harness that replays mainnet transactions against new program builds",
				TargetMarket: "Protocol developers",
				Difficulty:   domain.DifficultyMedium,
			},
			{
				Title:        "Transaction Debugger",
				Description:  "Web debugger that decodes failed transactions and points at the failing instruction",
				TargetMarket: "Application developers",
				Difficulty:   domain.DifficultyMedium,
			},
		},
		CrossChainInterop: {
			{
				Title:        "Bridge Route Finder",
				Description:  "Compares bridge fees, latency and security assumptions for a given transfer",
				TargetMarket: "Cross-chain users",
				Difficulty:   domain.DifficultyMedium,
			},
		},
	}, []IdeaTemplate{
		{
			Title:        "Ecosystem Signal Dashboard",
			Description:  "Public dashboard that tracks repositories, forum activity and TVL shifts in one place",
			TargetMarket: "Investors and builders",
			Difficulty:   domain.DifficultyLow,
		},
		{
			Title:        "Developer Onboarding Hub",
			Description:  "Curated tutorials and starter templates for developers entering the ecosystem",
			TargetMarket: "New developers",
			Difficulty:   domain.DifficultyLow,
		},
		{
			Title:        "Wallet UX Audit Kit",
			Description:  "Checklist and automated tests for common wallet connection and signing pitfalls",
			TargetMarket: "dApp teams",
			Difficulty:   domain.DifficultyLow,
		},
	})
}
