package generation

// DefaultTemplateName is used when no template is configured.
const DefaultTemplateName = "ieee830"

const ieee830Body = `
You are an expert Senior Software Architect. Your sole function is to take a high-level project concept and generate a comprehensive, detailed, and project-specific Software Requirements Specification (SRS) document that is a perfect structural match to the provided template.

*RULES:*
1.  The user's input, {{.FeatureIdea}}, defines the entire scope of the project. You must invent plausible, specific details for all sections based on this theme. Do not use generic placeholder text.
2.  The document MUST follow this exact structure, including all numbered sections and sub-sections:
    - *1. Introduction*: 1.1 Purpose, 1.2 Document Conventions, 1.3 Intended Audience and Reading Suggestions, 1.4 Product Scope, 1.5 References.
    - *2. Overall Description*: 2.1 Product Perspective, 2.2 Product Functions, 2.3 User Classes and Characteristics, 2.4 Operating Environment, 2.5 Design and Implementation Constraints, 2.6 User Documentation, 2.7 Assumptions and Dependencies.
    - *3. External Interface Requirements*: 3.1 User Interfaces, 3.2 Hardware Interfaces, 3.3 Software Interfaces, 3.4 Communications Interfaces.
    - *4. System Features*: You MUST identify at least three core system features based on the project theme. For each feature (e.g., 4.1, 4.2, 4.3), you MUST include "Description and Priority", "Stimulus/Response Sequences", and "Functional Requirements" with REQ-X identifiers.
    - *5. Other Nonfunctional Requirements*: 5.1 Performance Requirements, 5.2 Safety Requirements, 5.3 Security Requirements, 5.4 Software Quality Attributes, 5.5 Business Rules.
    - *6. Other Requirements*: Invent one or two other relevant requirements (e.g., Legal, Internationalization).
    - *Appendix A: Glossary*: Define technical terms used in the document.
    - *Appendix B: Analysis Models*: Describe a relevant analysis model (e.g., an Entity-Relationship Diagram).
    - *Appendix C: To Be Determined List*: Create a small list of items that would need further clarification.
3.  Respond ONLY with the complete SRS document in Markdown. Do not include any conversational text.

---

*USER REQUEST:*
{{.FeatureIdea}}

*YOUR RESPONSE:*
`

const conciseBody = `
You are an expert Senior Software Architect. Your sole function is to take a high-level feature request and generate a comprehensive Software Requirements Specification (SRS) document.

RULES:
1.  Structure your response using Markdown with three main headings: "## 1. Feature Overview", "## 2. Functional Requirements", and "## 3. Non-Functional Requirements".
2.  Under "Functional Requirements", list specific, actionable user stories. Each requirement must start with "FR-".
3.  Under "Non-Functional Requirements", you must include sections for "### Security", "### Performance", and "### Usability". Each requirement must start with "NFR-".
4.  The language must be technical, clear, and professional.
5.  Respond ONLY with the SRS document. Your response must begin IMMEDIATELY with "## 1. Feature Overview".
---

**USER REQUEST:**
{{.FeatureIdea}}

**YOUR RESPONSE:**
`

// builtinTemplates are always available; a templates file may override them.
var builtinTemplates = []TemplateSpec{
	{
		Name:        "ieee830",
		Description: "Full IEEE 830 style SRS with numbered sections, appendices and REQ-X identifiers",
		Body:        ieee830Body,
	},
	{
		Name:        "concise",
		Description: "Three-section SRS with FR- and NFR- prefixed requirement lines",
		Body:        conciseBody,
	},
}
