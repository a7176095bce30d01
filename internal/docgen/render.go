// Package docgen renders the five Markdown documents of a project from its
// configuration. Every function here is pure: the same config always yields
// the same bytes.
package docgen

import (
	"fmt"
	"strings"
)

// GeneratedDocumentSet holds the five documents rendered from one config.
type GeneratedDocumentSet struct {
	PRD             string `json:"prd"`
	CodeStyle       string `json:"codeStyle"`
	CursorRules     string `json:"cursorRules"`
	ProgressTracker string `json:"progressTracker"`
	Readme          string `json:"readme"`
}

// GenerateAll renders every document for cfg.
func GenerateAll(cfg ProjectConfig) GeneratedDocumentSet {
	return GeneratedDocumentSet{
		PRD:             RenderPRD(cfg),
		CodeStyle:       RenderCodeStyle(cfg),
		CursorRules:     RenderCursorRules(cfg),
		ProgressTracker: RenderProgressTracker(cfg),
		Readme:          RenderReadme(cfg),
	}
}

// RenderPRD renders the product requirements document skeleton.
func RenderPRD(cfg ProjectConfig) string {
	var ctx []string
	if cfg.Platform != PlatformNone {
		ctx = append(ctx, "Platform: "+string(cfg.Platform))
	}
	if strings.TrimSpace(cfg.Framework) != "" {
		ctx = append(ctx, "Framework: "+cfg.Framework)
	}
	if len(cfg.SelectedPackages) > 0 {
		ctx = append(ctx, "Dependencies: "+strings.Join(cfg.SelectedPackages, ", "))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert product manager tasked with creating a detailed Product Requirements Document (PRD) for %s.\n\n", cfg.Name)
	fmt.Fprintf(&b, "# %s - Product Requirements Document\n\n", cfg.Name)
	fmt.Fprintf(&b, "## Project Overview\n%s\n\n", cfg.description())
	b.WriteString("## Project Context\n")
	for _, line := range ctx {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(prdSections)
	return b.String()
}

const prdSections = `## Document Sections

### 1. Executive Summary
Write a concise overview that includes:
- Product vision and goals
- Target audience
- Key value propositions
- Success metrics and KPIs
- Project timeline overview

### 2. Problem Statement
Describe:
- Current pain points and challenges
- Market opportunity
- User needs and feedback
- Business impact and goals
- Competitive analysis

### 3. Product Requirements
Define detailed functional and non-functional requirements:
- User stories and use cases
- Feature specifications
- Technical requirements
- Performance criteria
- Compatibility requirements
- Security considerations

### 4. User Experience
Detail the user experience including:
- User personas
- User flows
- Information architecture
- Wireframes or mockups descriptions
- Interaction patterns

### 5. Technical Architecture
Outline the high-level technical approach:
- System components
- Data models
- Integration points
- Deployment strategy
- Scalability considerations

### 6. Development Roadmap
Create a phased approach:
- Feature prioritization
- Release milestones
- Resource requirements
- Dependencies and constraints

### 7. Success Metrics
Define how success will be measured:
- Key performance indicators
- Analytics implementation
- User feedback mechanisms
- Business metrics

### 8. Appendix
Include additional information:
- Research findings
- Competitive analysis details
- Technical specifications
- Open questions and considerations
`

// RenderCodeStyle renders the code style guide. At most one framework block
// is appended, chosen by ClassifyFramework.
func RenderCodeStyle(cfg ProjectConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a senior developer establishing comprehensive coding standards for the %s project. Create detailed code style guidelines that the team should follow.\n\n", cfg.Name)
	fmt.Fprintf(&b, "# %s - Code Style Guidelines\n\n", cfg.Name)
	b.WriteString(codeStyleBase)
	if block := ClassifyFramework(cfg.Framework).Guidelines(); block != "" {
		b.WriteString("\n")
		b.WriteString(block)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(codeStyleTail)
	return b.String()
}

const codeStyleBase = `## General Principles
- Maintain consistency across the codebase
- Prioritize readability and maintainability
- Follow the principle of least surprise
- Write self-documenting code
- Use meaningful naming conventions

## Formatting
- Indentation: Use 2 spaces (not tabs)
- Line length: Maximum 100 characters
- Whitespace: Use consistent spacing around operators and after commas
- Braces: Opening braces on the same line as the statement
- Comments: Use // for single-line comments and /** */ for multi-line documentation

## Naming Conventions
- Use camelCase for variables and functions
- Use PascalCase for classes and interfaces
- Use ALL_CAPS for constants
- Prefix private properties with underscore (_property)
- Use descriptive, meaningful names that convey intent

## TypeScript Guidelines
- Use explicit type annotations for function parameters and return types
- Prefer interfaces over type aliases for object shapes
- Use union types for variables that can have multiple types
- Leverage TypeScript's utility types when appropriate
- Use generics to create reusable components

## Directory Structure
- Organize code by feature rather than by type
- Keep related files close to each other
- Use consistent file naming conventions
- Separate concerns appropriately
- Maintain a clean import structure

## Testing Standards
- Write tests for all functionality
- Use descriptive test names that explain what is being tested
- Follow the Arrange-Act-Assert pattern
- Mock external dependencies appropriately
- Maintain test isolation
`

const codeStyleTail = `## Version Control
- Write clear, concise commit messages
- Reference issue numbers in commit messages
- Keep commits focused and atomic
- Use feature branches for new development
- Review code before merging

## Documentation
- Document all public APIs
- Include examples in documentation
- Keep documentation up-to-date with code changes
- Document complex algorithms and business logic
- Use JSDoc for inline documentation

## Error Handling
- Handle errors at the appropriate level
- Use custom error types for domain-specific errors
- Provide informative error messages
- Avoid swallowing exceptions
- Log errors appropriately

This document serves as a living guide and should be updated as the team's practices evolve.
`

func platformOrDefault(p Platform) string {
	if p == PlatformNone {
		return string(PlatformWeb)
	}
	return string(p)
}

// RenderCursorRules renders the AI assistant rules file.
func RenderCursorRules(cfg ProjectConfig) string {
	stack := cfg.TechStack()
	platform := platformOrDefault(cfg.Platform)
	target := string(cfg.Platform)
	if target == "" {
		target = "application"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a .cursorrules file for a project named %s that uses %s for %s development. The file should guide Cursor AI to generate high-quality code following best practices.\n\n", cfg.Name, stack, target)
	fmt.Fprintf(&b, "# %s\n\n", cfg.Name)
	b.WriteString("# Overall Goal:\n")
	fmt.Fprintf(&b, "# Create a %s application named %s that follows best practices and modern development standards.\n\n", platform, cfg.Name)
	b.WriteString("# Core Technologies:\n")
	fmt.Fprintf(&b, "# Use %s.\n\n", stack)
	b.WriteString(cursorRulesBody)
	return b.String()
}

const cursorRulesBody = `# Project Structure:
# Follow a standard structure appropriate for the selected technology stack.
# Create appropriate directories for components, pages, services, utilities, etc.
# Use clean architecture principles where applicable.

# Coding Standards & Quality:
# Use TypeScript with strict type checking.
# Use ESLint for linting with appropriate rules.
# Implement proper error handling throughout the application.
# Follow the DRY (Don't Repeat Yourself) principle.
# Use proper naming conventions for variables, functions, and components.
# Include appropriate comments and documentation.

# Testing:
# Write unit tests for critical functionality.
# Use appropriate testing libraries for the selected framework.
# Maintain good test coverage.

# Security:
# Implement proper authentication and authorization.
# Follow security best practices for the selected technologies.
# Sanitize inputs and validate data appropriately.

# Performance:
# Optimize for performance where necessary.
# Use appropriate data structures and algorithms.
# Follow best practices for rendering and state management.

# Accessibility:
# Ensure the application is accessible to all users.
# Follow WCAG 2.1 guidelines.
# Use semantic HTML.

# Responsiveness:
# Ensure the application is responsive and works well on various devices.
# Implement mobile-first design where appropriate.

# Customization:
# Structure the codebase modularly to allow for future customization.
`

// RenderProgressTracker renders the phased timeline. The phases are fixed;
// only the introduction depends on cfg.
func RenderProgressTracker(cfg ProjectConfig) string {
	desc := cfg.description()

	intro := fmt.Sprintf("Create a comprehensive project timeline and milestone tracking document for %s (%s)", cfg.Name, desc)
	if fw := strings.TrimSpace(cfg.Framework); fw != "" {
		intro += " using " + fw
	}
	if cfg.Platform != PlatformNone {
		intro += fmt.Sprintf(" for %s development", cfg.Platform)
	}

	var b strings.Builder
	b.WriteString(intro)
	b.WriteString(".\n\n")
	fmt.Fprintf(&b, "# %s - Project Progress Tracker\n\n", cfg.Name)
	fmt.Fprintf(&b, "## Project Overview\n%s\n\n", desc)
	b.WriteString(progressTimeline)
	return b.String()
}

const progressTimeline = `## Project Timeline

### Phase 1: Project Setup and Planning (Weeks 1-2)
- [ ] Define project requirements and objectives
- [ ] Set up development environment
- [ ] Initialize repository and project structure
- [ ] Create initial documentation
- [ ] Define project architecture
- [ ] Set up CI/CD pipeline

### Phase 2: Core Feature Development (Weeks 3-6)
- [ ] Implement authentication system
- [ ] Create base UI components
- [ ] Develop core functionality
- [ ] Set up database schema and models
- [ ] Implement API endpoints
- [ ] Create initial test suite

### Phase 3: Advanced Features (Weeks 7-10)
- [ ] Implement advanced functionality
- [ ] Enhance user interface
- [ ] Optimize performance
- [ ] Expand test coverage
- [ ] Implement feedback mechanism
- [ ] Add analytics tracking

### Phase 4: Testing and Refinement (Weeks 11-12)
- [ ] Conduct comprehensive testing
- [ ] Fix identified bugs and issues
- [ ] Optimize for performance
- [ ] Conduct security audit
- [ ] Implement user feedback
- [ ] Prepare for deployment

### Phase 5: Deployment and Launch (Weeks 13-14)
- [ ] Prepare production environment
- [ ] Perform final QA testing
- [ ] Create deployment documentation
- [ ] Set up monitoring systems
- [ ] Deploy to production
- [ ] Conduct post-launch review

## Key Milestones
1. **Project Kickoff**: Week 1
2. **Architecture Approval**: Week 2
3. **Core Features Complete**: Week 6
4. **All Features Implemented**: Week 10
5. **Testing Complete**: Week 12
6. **Product Launch**: Week 14

## Team Members
- Project Manager
- Frontend Developer(s)
- Backend Developer(s)
- UI/UX Designer
- QA Engineer

## Risk Management
- Identify potential risks and mitigation strategies
- Define contingency plans for key risk areas
- Establish regular review cycles for risk assessment

## Progress Tracking
- Weekly team meetings
- Bi-weekly stakeholder updates
- Monthly progress reviews
- Continuous integration metrics
- Bug tracking and resolution metrics

This document should be reviewed and updated regularly throughout the project lifecycle.
`

const fence = "```"

// RenderReadme renders the README skeleton. The slug of the name is used in
// the clone/cd commands and the folder tree.
func RenderReadme(cfg ProjectConfig) string {
	slug := Slug(cfg.Name)
	stack := cfg.TechStack()

	var b strings.Builder
	fmt.Fprintf(&b, "Create a comprehensive README.md file for the %s project that provides clear documentation for developers and users.\n\n", cfg.Name)
	fmt.Fprintf(&b, "# %s\n\n", cfg.Name)
	fmt.Fprintf(&b, "## Overview\n%s\n\n", cfg.description())

	b.WriteString("## Technologies\n")
	if stack != "" {
		fmt.Fprintf(&b, "This project is built with %s.\n", stack)
	}
	if cfg.Platform != PlatformNone {
		fmt.Fprintf(&b, "Designed for %s development.\n", cfg.Platform)
	}
	b.WriteString("\n")

	b.WriteString(`## Features
- [List the key features of the application]
- [Feature 1]
- [Feature 2]
- [Feature 3]

## Getting Started

### Prerequisites
- Node.js (v18 or higher)
- npm or yarn
- [Any other dependencies]

### Installation
`)
	b.WriteString(fence + "bash\n")
	b.WriteString("# Clone the repository\n")
	fmt.Fprintf(&b, "git clone https://github.com/username/%s.git\n\n", slug)
	b.WriteString("# Navigate to the project directory\n")
	fmt.Fprintf(&b, "cd %s\n\n", slug)
	b.WriteString(`# Install dependencies
npm install
# or
yarn install

# Start the development server
npm run dev
# or
yarn dev
`)
	b.WriteString(fence + "\n\n")

	b.WriteString("## Usage\n[Provide examples and instructions for how to use the application]\n\n")

	b.WriteString("## Project Structure\n")
	b.WriteString(fence + "\n")
	fmt.Fprintf(&b, "%s/\n", slug)
	b.WriteString(`├── app/                # Next.js application routes
├── components/         # Reusable UI components
├── lib/                # Utility functions and services
├── public/             # Static assets
├── styles/             # CSS and styling files
├── .env.example        # Example environment variables
├── package.json        # Dependencies and scripts
└── README.md           # Project documentation
`)
	b.WriteString(fence + "\n\n")

	b.WriteString(`## Configuration
[Explain any configuration options, environment variables, etc.]

## Deployment
[Instructions for deploying the application to production]

## Contributing
[Guidelines for contributing to the project]

## License
[Specify the license under which the project is distributed]

## Acknowledgments
[Credit collaborators, libraries, or resources used]

## Contact
[Provide contact information for questions or support]
`)
	return b.String()
}
