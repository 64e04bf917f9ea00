// Package graphql exposes the blog API as a GraphQL schema with method
// resolvers, executed by graph-gophers/graphql-go.
package graphql

// Schema is the complete API surface. Field errors travel as data in the
// response envelopes; authorization failures surface as GraphQL errors.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		posts(take: Int!, cursor: String): PaginatedPosts!
		post(postId: ID!): Post
		getPostsByUser: [Post!]!
		currentUser: User
	}

	type Mutation {
		register(username: String!, password: String!): UserResponse!
		login(username: String!, password: String!): UserResponse!
		logout: Boolean!
		createPost(title: String!, body: String!): PostResponse!
		updatePost(postId: ID!, title: String!, body: String!): PostResponse
		deletePost(postId: ID!): Boolean!
	}

	type User {
		id: ID!
		username: String!
		createdAt: String!
		updatedAt: String!
		posts: [Post!]!
	}

	type Post {
		id: ID!
		title: String!
		body: String!
		bodySnippet: String!
		createdAt: String!
		updatedAt: String!
		authorId: ID!
		author: User!
	}

	type FieldError {
		field: String!
		message: String!
	}

	type UserResponse {
		user: User
		errors: [FieldError!]
	}

	type PostResponse {
		post: Post
		errors: [FieldError!]
	}

	type PaginatedPosts {
		posts: [Post!]!
		hasMore: Boolean!
	}
`
