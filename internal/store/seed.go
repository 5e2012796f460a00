package store

import "interview-prep-backend/internal/models"

// DefaultQuestions is the built-in interview question set.
var DefaultQuestions = []models.Question{
	// JavaScript - fresher
	{
		ID:            1,
		Question:      "What is the difference between 'let', 'const', and 'var' in JavaScript?",
		Domain:        "JavaScript",
		Level:         models.LevelFresher,
		CorrectAnswer: "var is function scoped and can be redeclared, let and const are block scoped, const cannot be reassigned after declaration",
		Points:        10,
	},
	{
		ID:            2,
		Question:      "Explain what is hoisting in JavaScript?",
		Domain:        "JavaScript",
		Level:         models.LevelFresher,
		CorrectAnswer: "Hoisting is JavaScript's behavior of moving variable and function declarations to the top of their scope during compilation",
		Points:        5,
	},
	{
		ID:            3,
		Question:      "What are closures in JavaScript?",
		Domain:        "JavaScript",
		Level:         models.LevelFresher,
		CorrectAnswer: "A closure is a function that has access to variables in its outer scope even after the outer function has returned",
		Points:        6,
	},
	// JavaScript - experienced
	{
		ID:            4,
		Question:      "Explain the event loop in JavaScript and how it handles asynchronous operations?",
		Domain:        "JavaScript",
		Level:         models.LevelExperienced,
		CorrectAnswer: "The event loop is a mechanism that handles asynchronous operations by managing the call stack, callback queue, and microtask queue, ensuring non-blocking execution",
		Points:        10,
	},
	{
		ID:            5,
		Question:      "What is the difference between Promise.all() and Promise.allSettled()?",
		Domain:        "JavaScript",
		Level:         models.LevelExperienced,
		CorrectAnswer: "Promise.all() fails fast if any promise rejects, while Promise.allSettled() waits for all promises to settle and returns results for all",
		Points:        8,
	},
	// React - fresher
	{
		ID:            6,
		Question:      "What is JSX in React?",
		Domain:        "React",
		Level:         models.LevelFresher,
		CorrectAnswer: "JSX is a syntax extension for JavaScript that allows writing HTML-like syntax in React components",
		Points:        5,
	},
	{
		ID:            7,
		Question:      "What is the difference between state and props in React?",
		Domain:        "React",
		Level:         models.LevelFresher,
		CorrectAnswer: "State is internal component data that can change, while props are external data passed from parent components and are read-only",
		Points:        6,
	},
	{
		ID:            8,
		Question:      "What are React Hooks?",
		Domain:        "React",
		Level:         models.LevelFresher,
		CorrectAnswer: "Hooks are functions that allow functional components to use state and lifecycle methods previously only available in class components",
		Points:        6,
	},
	// React - experienced
	{
		ID:            9,
		Question:      "Explain the concept of React reconciliation and the virtual DOM?",
		Domain:        "React",
		Level:         models.LevelExperienced,
		CorrectAnswer: "Reconciliation is React's process of comparing virtual DOM trees to efficiently update the real DOM by identifying minimal changes needed",
		Points:        10,
	},
	{
		ID:            10,
		Question:      "What are higher-order components (HOCs) and when would you use them?",
		Domain:        "React",
		Level:         models.LevelExperienced,
		CorrectAnswer: "HOCs are functions that take a component and return a new component with additional props or behavior, used for code reuse and cross-cutting concerns",
		Points:        9,
	},
	// Python - fresher
	{
		ID:            11,
		Question:      "What is the difference between list and tuple in Python?",
		Domain:        "Python",
		Level:         models.LevelFresher,
		CorrectAnswer: "Lists are mutable and use square brackets, while tuples are immutable and use parentheses",
		Points:        5,
	},
	{
		ID:            12,
		Question:      "Explain what is list comprehension in Python?",
		Domain:        "Python",
		Level:         models.LevelFresher,
		CorrectAnswer: "List comprehension is a concise way to create lists using a single line of code with optional conditions",
		Points:        6,
	},
	// Python - experienced
	{
		ID:            13,
		Question:      "Explain the Global Interpreter Lock (GIL) in Python?",
		Domain:        "Python",
		Level:         models.LevelExperienced,
		CorrectAnswer: "GIL is a mutex that prevents multiple threads from executing Python bytecodes simultaneously, limiting true parallelism in CPU-bound tasks",
		Points:        10,
	},
	{
		ID:            14,
		Question:      "What are decorators in Python and how do they work?",
		Domain:        "Python",
		Level:         models.LevelExperienced,
		CorrectAnswer: "Decorators are functions that modify or extend the behavior of other functions without changing their code, using the @ syntax",
		Points:        8,
	},
	// Database - fresher
	{
		ID:            15,
		Question:      "What is the difference between SQL and NoSQL databases?",
		Domain:        "Database",
		Level:         models.LevelFresher,
		CorrectAnswer: "SQL databases are relational with structured schemas and ACID properties, while NoSQL databases are non-relational with flexible schemas and horizontal scaling",
		Points:        6,
	},
	{
		ID:            16,
		Question:      "What is a primary key in a database?",
		Domain:        "Database",
		Level:         models.LevelFresher,
		CorrectAnswer: "A primary key is a unique identifier for each record in a table that cannot be null and ensures entity integrity",
		Points:        5,
	},
	// Database - experienced
	{
		ID:            17,
		Question:      "Explain database normalization and its different forms?",
		Domain:        "Database",
		Level:         models.LevelExperienced,
		CorrectAnswer: "Normalization reduces data redundancy through forms (1NF, 2NF, 3NF, BCNF) by organizing data into related tables with minimal duplication",
		Points:        10,
	},
	{
		ID:            18,
		Question:      "What is database indexing and how does it improve performance?",
		Domain:        "Database",
		Level:         models.LevelExperienced,
		CorrectAnswer: "Indexing creates data structures that improve query performance by providing faster data retrieval paths, trading storage space for speed",
		Points:        9,
	},
	// System Design - experienced
	{
		ID:            19,
		Question:      "How would you design a URL shortening service like bit.ly?",
		Domain:        "System Design",
		Level:         models.LevelExperienced,
		CorrectAnswer: "Use base62 encoding for short URLs, hash table for mapping, load balancers, caching layer, and database sharding for scalability",
		Points:        15,
	},
	{
		ID:            20,
		Question:      "Explain the CAP theorem and its implications for distributed systems?",
		Domain:        "System Design",
		Level:         models.LevelExperienced,
		CorrectAnswer: "CAP theorem states that distributed systems can only guarantee two of: Consistency, Availability, and Partition tolerance, requiring trade-offs",
		Points:        12,
	},
}
