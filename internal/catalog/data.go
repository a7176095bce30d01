package catalog

import "github.com/cursorcraft/cursorcraft-backend/internal/docgen"

var (
	web     = docgen.PlatformWeb
	mobile  = docgen.PlatformMobile
	desktop = docgen.PlatformDesktop
	api     = docgen.PlatformAPI
)

var (
	fwExpress = Framework{ID: "express", Name: "Express", Description: "Fast, unopinionated web framework for Node.js", Logo: "logo-express.svg"}
	fwNest    = Framework{ID: "nestjs", Name: "NestJS", Description: "Progressive Node.js framework", Logo: "logo-nestjs.svg"}
)

func withCategory(f Framework, category string) Framework {
	f.Category = category
	return f
}

var platforms = []Platform{
	{
		ID:          web,
		Name:        "Web Application",
		Description: "Build for browsers with responsive design",
		Icon:        "globe",
		Frameworks: []Framework{
			{ID: "next", Name: "Next.js", Description: "React framework for production", Category: "Frontend", Logo: "logo-nextjs.svg"},
			{ID: "react", Name: "React", Description: "JavaScript library for user interfaces", Category: "Frontend", Logo: "logo-react.svg"},
			{ID: "vue", Name: "Vue.js", Description: "Progressive JavaScript framework", Category: "Frontend", Logo: "logo-vue.svg"},
			{ID: "angular", Name: "Angular", Description: "Platform for building web applications", Category: "Frontend", Logo: "logo-angular.svg"},
			{ID: "svelte", Name: "Svelte", Description: "Cybernetically enhanced web apps", Category: "Frontend", Logo: "logo-svelte.svg"},
			{ID: "node", Name: "Node.js", Description: "JavaScript runtime for backends", Category: "Backend", Logo: "logo-nodejs.svg"},
			withCategory(fwExpress, "Backend"),
			withCategory(fwNest, "Backend"),
		},
	},
	{
		ID:          mobile,
		Name:        "Mobile Application",
		Description: "Native or cross-platform mobile apps",
		Icon:        "smartphone",
		Frameworks: []Framework{
			{ID: "react-native", Name: "React Native", Description: "Build native apps using React", Category: "Cross-Platform", Logo: "logo-react-native.svg"},
			{ID: "flutter", Name: "Flutter", Description: "Google's UI toolkit for mobile", Category: "Cross-Platform", Logo: "logo-flutter.svg"},
			{ID: "ionic", Name: "Ionic", Description: "Cross-platform mobile app development", Category: "Cross-Platform", Logo: "logo-ionic.svg"},
			{ID: "swift", Name: "Swift", Description: "Native iOS app development", Category: "Native", Logo: "logo-swift.svg"},
			{ID: "kotlin", Name: "Kotlin", Description: "Native Android app development", Category: "Native", Logo: "logo-kotlin.svg"},
		},
	},
	{
		ID:          desktop,
		Name:        "Desktop Application",
		Description: "Cross-platform desktop applications",
		Icon:        "monitor",
		Frameworks: []Framework{
			{ID: "electron", Name: "Electron", Description: "Build cross-platform desktop apps with JavaScript", Category: "Cross-Platform", Logo: "logo-electron.svg"},
			{ID: "tauri", Name: "Tauri", Description: "Lightweight desktop apps with web UI", Category: "Cross-Platform", Logo: "logo-tauri.svg"},
			{ID: "qt", Name: "Qt", Description: "Cross-platform application framework", Category: "Cross-Platform", Logo: "logo-qt.svg"},
		},
	},
	{
		ID:          api,
		Name:        "API Service",
		Description: "RESTful or GraphQL API endpoints",
		Icon:        "server",
		Frameworks: []Framework{
			withCategory(fwExpress, "Node.js"),
			withCategory(fwNest, "Node.js"),
			{ID: "fastapi", Name: "FastAPI", Description: "Modern, fast API framework for Python", Category: "Python", Logo: "logo-fastapi.svg"},
			{ID: "django", Name: "Django", Description: "High-level Python web framework", Category: "Python", Logo: "logo-django.svg"},
			{ID: "spring", Name: "Spring Boot", Description: "Java-based framework for microservices", Category: "Java", Logo: "logo-spring.svg"},
			{ID: "dotnet", Name: ".NET Core", Description: "Cross-platform framework for building APIs", Category: ".NET", Logo: "logo-dotnet.svg"},
		},
	},
}

var (
	reactFamily = []string{"react", "next", "react-native"}
	reactWeb    = []string{"react", "next"}
	nodeFamily  = []string{"node", "express", "nestjs"}
)

var packages = []Package{
	{ID: "auth", Name: "Authentication", Description: "User authentication and authorization", Platforms: []docgen.Platform{web, mobile, api}, Category: "Security"},

	{ID: "redux", Name: "Redux", Description: "Predictable state container", Platforms: []docgen.Platform{web, mobile}, Frameworks: reactFamily, Category: "State Management"},
	{ID: "zustand", Name: "Zustand", Description: "Small, fast state management solution", Platforms: []docgen.Platform{web, mobile}, Frameworks: reactFamily, Category: "State Management"},
	{ID: "mobx", Name: "MobX", Description: "Simple, scalable state management", Platforms: []docgen.Platform{web, mobile}, Frameworks: reactFamily, Category: "State Management"},
	{ID: "vuex", Name: "Vuex", Description: "State management pattern and library for Vue.js", Platforms: []docgen.Platform{web}, Frameworks: []string{"vue"}, Category: "State Management"},
	{ID: "pinia", Name: "Pinia", Description: "Intuitive, type safe store for Vue", Platforms: []docgen.Platform{web}, Frameworks: []string{"vue"}, Category: "State Management"},

	{ID: "prisma", Name: "Prisma", Description: "Next-generation ORM for Node.js", Platforms: []docgen.Platform{web, api}, Frameworks: nodeFamily, Category: "Database"},
	{ID: "mongoose", Name: "Mongoose", Description: "MongoDB object modeling for Node.js", Platforms: []docgen.Platform{web, api}, Frameworks: nodeFamily, Category: "Database"},
	{ID: "sequelize", Name: "Sequelize", Description: "ORM for Node.js supporting multiple SQL dialects", Platforms: []docgen.Platform{web, api}, Frameworks: nodeFamily, Category: "Database"},
	{ID: "typeorm", Name: "TypeORM", Description: "ORM for TypeScript and JavaScript", Platforms: []docgen.Platform{web, api}, Frameworks: nodeFamily, Category: "Database"},

	{ID: "tailwind", Name: "Tailwind CSS", Description: "Utility-first CSS framework", Platforms: []docgen.Platform{web, mobile}, Category: "UI Framework"},
	{ID: "bootstrap", Name: "Bootstrap", Description: "Popular CSS framework", Platforms: []docgen.Platform{web}, Category: "UI Framework"},
	{ID: "mui", Name: "Material UI", Description: "React components for faster development", Platforms: []docgen.Platform{web}, Frameworks: reactWeb, Category: "UI Framework"},
	{ID: "chakra", Name: "Chakra UI", Description: "Simple, modular component library", Platforms: []docgen.Platform{web}, Frameworks: reactWeb, Category: "UI Framework"},
	{ID: "shadcn", Name: "shadcn/ui", Description: "Beautifully designed components", Platforms: []docgen.Platform{web}, Frameworks: reactWeb, Category: "UI Framework"},

	{ID: "jest", Name: "Jest", Description: "JavaScript testing framework", Platforms: []docgen.Platform{web, mobile, api}, Category: "Testing"},
	{ID: "testing-library", Name: "Testing Library", Description: "Simple and complete testing utilities", Platforms: []docgen.Platform{web, mobile}, Frameworks: []string{"react", "next", "react-native", "vue", "angular"}, Category: "Testing"},
	{ID: "cypress", Name: "Cypress", Description: "End-to-end testing framework", Platforms: []docgen.Platform{web}, Category: "Testing"},

	{ID: "react-query", Name: "React Query", Description: "Data fetching and caching library", Platforms: []docgen.Platform{web, mobile}, Frameworks: reactFamily, Category: "API/Data Fetching"},
	{ID: "swr", Name: "SWR", Description: "React Hooks for data fetching", Platforms: []docgen.Platform{web}, Frameworks: reactWeb, Category: "API/Data Fetching"},
	{ID: "axios", Name: "Axios", Description: "Promise-based HTTP client", Platforms: []docgen.Platform{web, mobile, api}, Category: "API/Data Fetching"},

	{ID: "react-hook-form", Name: "React Hook Form", Description: "Performant, flexible forms with easy validation", Platforms: []docgen.Platform{web, mobile}, Frameworks: reactFamily, Category: "Forms"},
	{ID: "formik", Name: "Formik", Description: "Build forms in React without tears", Platforms: []docgen.Platform{web, mobile}, Frameworks: reactFamily, Category: "Forms"},

	{ID: "zod", Name: "Zod", Description: "TypeScript-first schema validation", Platforms: []docgen.Platform{web, mobile, api}, Category: "Validation"},
}

var templates = []Template{
	{
		ID:          "nextjs-app",
		Name:        "Next.js TypeScript App",
		Description: "A full-featured Next.js application with TypeScript, Tailwind CSS, and more.",
		Type:        KindWeb,
		Tags:        []string{"next.js", "typescript", "tailwind"},
	},
	{
		ID:          "express-api",
		Name:        "Express API",
		Description: "RESTful API built with Express.js, TypeScript, and MongoDB integration.",
		Type:        KindAPI,
		Tags:        []string{"express", "typescript", "mongodb", "rest-api"},
	},
	{
		ID:          "react-vite-app",
		Name:        "React Vite App",
		Description: "Modern React application using Vite for blazing fast development.",
		Type:        KindWeb,
		Tags:        []string{"react", "vite", "typescript", "modern"},
	},
	{
		ID:          "nextjs-blog",
		Name:        "Next.js Blog",
		Description: "Blog platform built with Next.js, MDX for content, and TailwindCSS.",
		Type:        KindWeb,
		Tags:        []string{"next.js", "mdx", "blog", "content"},
	},
	{
		ID:          "node-cli-tool",
		Name:        "Node CLI Tool",
		Description: "Command-line interface tool built with Node.js and TypeScript.",
		Type:        KindCLI,
		Tags:        []string{"node.js", "cli", "typescript", "commander"},
	},
	{
		ID:          "fastapi-backend",
		Name:        "FastAPI Backend",
		Description: "High-performance API with FastAPI, Python, and PostgreSQL integration.",
		Type:        KindAPI,
		Tags:        []string{"python", "fastapi", "postgresql", "async"},
	},
}
