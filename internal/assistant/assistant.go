// Package assistant implements the portal's canned-answer assistant: a
// deterministic mapping from query text to one of five fixed response
// templates via ordered substring predicates. No inference, no external calls.
package assistant

import "strings"

type rule struct {
	keywords []string
	response string
}

// Rules are evaluated in order; the first rule with any matching keyword wins.
var rules = []rule{
	{
		keywords: []string{"tax", "vat"},
		response: taxResponse,
	},
	{
		keywords: []string{"company", "business", "incorporation"},
		response: incorporationResponse,
	},
	{
		keywords: []string{"invoice", "billing", "payment"},
		response: invoicingResponse,
	},
	{
		keywords: []string{"financial", "accounting", "bookkeeping"},
		response: financialResponse,
	},
}

// Reply maps a query to its canned response. Matching is case-insensitive
// substring containment; unmatched queries get the default template.
func Reply(query string) string {
	lower := strings.ToLower(query)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.response
			}
		}
	}
	return defaultResponse
}

const taxResponse = `**Tax Guidance**

Here's what you need to know about taxation:

Current VAT rates:
- Standard rate: 19%
- Reduced rate: 13% (essential goods)
- Zero rate: 0% (exports, certain services)

Key compliance requirements:
- Monthly VAT declarations for businesses with turnover above 100,000 TND
- Quarterly declarations for smaller businesses
- Electronic filing through the tax portal

Upcoming deadlines:
- VAT declaration: 28th of each month
- Annual tax return: March 31st

Would you like help calculating your VAT liability or with specific compliance requirements?`

const incorporationResponse = `**Business Formation**

Key steps to set up your business:

Business structure options:
- SARL (Limited Liability Company) - most common
- SA (Joint Stock Company) - for larger businesses
- SUARL (Single-person LLC) - for sole proprietors

Required documentation:
- Company name reservation
- Articles of incorporation
- Initial capital deposit (minimum 1,000 TND for SARL)
- Registration with the Commercial Registry

Timeline: typically 15-30 days for complete registration.

We can guide you through the entire incorporation process, including legal documentation and tax registration.`

const invoicingResponse = `**Invoicing & Payment Guidelines**

Legal requirements for invoices:
- Sequential numbering system
- Company details and tax ID
- Client information and tax status
- Clear description of services or goods
- VAT breakdown where applicable

Payment terms:
- Standard terms: 30 days from invoice date
- Late payment interest: currently 7.5% annually
- Electronic payment increasingly required for B2B transactions

Best practices: issue invoices promptly, include clear payment instructions, and follow up on overdue payments systematically.`

const financialResponse = `**Financial Management Guidance**

Monthly requirements:
- Bank reconciliation
- Expense categorization
- Revenue recognition
- VAT calculation and filing

Annual obligations:
- Financial statements preparation
- Tax return filing
- Audit requirements above certain thresholds
- Social security declarations

Key ratios to monitor: current ratio, gross profit margin, cash flow trends, accounts receivable turnover.

We provide comprehensive bookkeeping, financial statement preparation and advisory services.`

const defaultResponse = `**Your Financial & Legal Assistant**

Thank you for your question. I can help with:

Financial services: tax planning and compliance, VAT calculations and filings, financial statement analysis, cash flow management.

Legal services: business formation and registration, contract review, regulatory compliance, employment law guidance.

Specialized tools: financial calculators, document templates, compliance checklists, tax calendar reminders.

Could you provide more specific details about what you need help with?`
