package catalog

import "interview-service/internal/models"

type companyBank struct {
	DSA         map[models.Difficulty][]models.Question
	Theoretical []string
	HR          []string
}

var questionBank = map[string]companyBank{
	"Google": {
		DSA: map[models.Difficulty][]models.Question{
			models.DifficultyEasy: {
				{
					Title:      "Two Sum",
					Difficulty: "Easy",
					Description: "Given an array of integers nums and an integer target, return indices of the two numbers that add up to target.\n\n" +
						"You may assume that each input would have exactly one solution, and you may not use the same element twice.\n\n" +
						"You can return the answer in any order.",
					Examples: []models.Example{
						{Input: "nums = [2,7,11,15], target = 9", Output: "[0,1]", Explanation: "Because nums[0] + nums[1] == 9, we return [0, 1]."},
						{Input: "nums = [3,2,4], target = 6", Output: "[1,2]", Explanation: "Because nums[1] + nums[2] == 6, we return [1, 2]."},
					},
					Constraints: []string{
						"2 <= nums.length <= 10^4",
						"-10^9 <= nums[i] <= 10^9",
						"-10^9 <= target <= 10^9",
						"Only one valid answer exists.",
					},
					FollowUp: "Can you come up with an algorithm that is less than O(n²) time complexity?",
					Hints: []string{
						"Use a hash map to store complements",
						"Think about what you need to check for each number",
					},
				},
				{
					Title:      "Valid Palindrome",
					Difficulty: "Easy",
					Description: "A phrase is a palindrome if, after converting all uppercase letters into lowercase letters and removing all non-alphanumeric characters, it reads the same forward and backward.\n\n" +
						"Given a string s, return true if it is a palindrome, or false otherwise.",
					Examples: []models.Example{
						{Input: "s = \"A man, a plan, a canal: Panama\"", Output: "true", Explanation: "\"amanaplanacanalpanama\" is a palindrome."},
						{Input: "s = \"race a car\"", Output: "false", Explanation: "\"raceacar\" is not a palindrome."},
					},
					Constraints: []string{
						"1 <= s.length <= 2 * 10^5",
						"s consists only of printable ASCII characters.",
					},
					FollowUp: "Could you solve it with O(1) extra space?",
					Hints: []string{
						"Use two pointers from both ends",
						"Remember to skip non-alphanumeric characters",
					},
				},
			},
			models.DifficultyMedium: {
				{
					Title:      "LRU Cache",
					Difficulty: "Medium",
					Description: "Design a data structure that follows the constraints of a Least Recently Used (LRU) cache.\n\n" +
						"Implement the LRUCache class:\n\n" +
						"- LRUCache(int capacity) Initialize the LRU cache with positive size capacity.\n" +
						"- int get(int key) Return the value of the key if the key exists, otherwise return -1.\n" +
						"- void put(int key, int value) Update the value of the key if the key exists. Otherwise, add the key-value pair to the cache. If the number of keys exceeds the capacity, evict the least recently used key.",
					Examples: []models.Example{
						{
							Input:       "[\"LRUCache\", \"put\", \"put\", \"get\", \"put\", \"get\", \"put\", \"get\", \"get\", \"get\"]\n[[2], [1, 1], [2, 2], [1], [3, 3], [2], [4, 4], [1], [3], [4]]",
							Output:      "[null, null, null, 1, null, -1, null, -1, 3, 4]",
							Explanation: "LRUCache lRUCache = new LRUCache(2);\nlRUCache.put(1, 1); // cache is {1=1}\nlRUCache.put(2, 2); // cache is {1=1, 2=2}\nlRUCache.get(1);    // return 1\nlRUCache.put(3, 3); // LRU key was 2, evicts key 2, cache is {1=1, 3=3}\nlRUCache.get(2);    // returns -1 (not found)\nlRUCache.put(4, 4); // LRU key was 1, evicts key 1, cache is {4=4, 3=3}\nlRUCache.get(1);    // return -1 (not found)\nlRUCache.get(3);    // return 3\nlRUCache.get(4);    // return 4",
						},
					},
					Constraints: []string{
						"1 <= capacity <= 3000",
						"0 <= key <= 10^4",
						"0 <= value <= 10^5",
						"At most 2 * 10^5 calls will be made to get and put.",
					},
					FollowUp: "Could you do get and put in O(1) time complexity?",
					Hints: []string{
						"Think about combining a hash map with a doubly linked list",
						"The hash map provides O(1) access, the linked list maintains order",
					},
				},
				{
					Title:      "Course Schedule",
					Difficulty: "Medium",
					Description: "There are a total of numCourses courses you have to take, labeled from 0 to numCourses - 1. You are given an array prerequisites where prerequisites[i] = [ai, bi] indicates that you must take course bi first if you want to take course ai.\n\n" +
						"For example, the pair [0, 1], indicates that to take course 0 you have to first take course 1.\n\n" +
						"Return true if you can finish all courses. Otherwise, return false.",
					Examples: []models.Example{
						{Input: "numCourses = 2, prerequisites = [[1,0]]", Output: "true", Explanation: "There are a total of 2 courses to take. To take course 1 you should have finished course 0. So it is possible."},
						{Input: "numCourses = 2, prerequisites = [[1,0],[0,1]]", Output: "false", Explanation: "There are a total of 2 courses to take. To take course 1 you should have finished course 0, and to take course 0 you should also have finished course 1. So it is impossible."},
					},
					Constraints: []string{
						"1 <= numCourses <= 2000",
						"0 <= prerequisites.length <= 5000",
						"prerequisites[i].length == 2",
						"0 <= ai, bi < numCourses",
						"All the pairs prerequisites[i] are unique.",
					},
					FollowUp: "Can you find the ordering of courses using topological sort?",
					Hints: []string{
						"This is a cycle detection problem in a directed graph",
						"Use DFS or Kahn's algorithm for topological sorting",
					},
				},
			},
			models.DifficultyHard: {
				{
					Title:      "Median of Two Sorted Arrays",
					Difficulty: "Hard",
					Description: "Given two sorted arrays nums1 and nums2 of size m and n respectively, return the median of the two sorted arrays.\n\n" +
						"The overall run time complexity should be O(log (m+n)).",
					Examples: []models.Example{
						{Input: "nums1 = [1,3], nums2 = [2]", Output: "2.00000", Explanation: "merged array = [1,2,3] and median is 2."},
						{Input: "nums1 = [1,2], nums2 = [3,4]", Output: "2.50000", Explanation: "merged array = [1,2,3,4] and median is (2 + 3) / 2 = 2.5."},
					},
					Constraints: []string{
						"nums1.length == m",
						"nums2.length == n",
						"0 <= m <= 1000",
						"0 <= n <= 1000",
						"1 <= m + n <= 2000",
						"-10^6 <= nums1[i], nums2[i] <= 10^6",
					},
					FollowUp: "The challenge is to achieve O(log(min(m,n))) time complexity.",
					Hints: []string{
						"Use binary search on the smaller array",
						"Think about partitioning both arrays",
					},
				},
			},
		},
		Theoretical: []string{
			"Explain the internal working of Google's MapReduce framework and how it handles fault tolerance.",
			"How would you design a distributed rate limiter for Google's API Gateway handling 1 million requests per second?",
			"Walk me through what happens when you type 'google.com' in your browser, from DNS to rendering.",
			"Explain Google's Bigtable architecture and how it differs from traditional relational databases.",
			"How does Google Search's PageRank algorithm work and what are its modern improvements?",
		},
		HR: []string{
			"Tell me about a time when you had to make a decision with incomplete information. How did you handle it?",
			"Describe a situation where you disagreed with your team's technical approach. What was the outcome?",
			"Give me an example of when you had to learn a completely new technology under a tight deadline.",
			"Tell me about the most complex system you've designed. What trade-offs did you make?",
		},
	},
	"Amazon": {
		DSA: map[models.Difficulty][]models.Question{
			models.DifficultyMedium: {
				{
					Title:      "Package Delivery Optimization",
					Difficulty: "Medium",
					Description: "You are given an array packages where packages[i] represents the weight of the ith package, and an integer truckCapacity representing the maximum weight capacity of a delivery truck.\n\n" +
						"Find the minimum number of days needed to deliver all packages if:\n" +
						"1. Packages must be delivered in the order given\n" +
						"2. Each day, you load packages sequentially until reaching truck capacity\n" +
						"3. You cannot split a package across days",
					Examples: []models.Example{
						{Input: "packages = [1,2,3,4,5,6,7,8,9,10], truckCapacity = 15", Output: "5", Explanation: "Day 1: [1,2,3,4,5] = 15\nDay 2: [6,7] = 13\nDay 3: [8] = 8\nDay 4: [9] = 9\nDay 5: [10] = 10"},
					},
					Constraints: []string{
						"1 <= packages.length <= 5 * 10^4",
						"1 <= packages[i] <= 500",
						"1 <= truckCapacity <= 5 * 10^6",
					},
					FollowUp: "Can you solve this using binary search in O(n log n) time?",
					Hints: []string{
						"Binary search on the number of days",
						"For each mid value, check if delivery is possible",
					},
				},
			},
			models.DifficultyHard: {
				{
					Title:      "Warehouse Inventory System",
					Difficulty: "Hard",
					Description: "Design a system to track inventory across multiple Amazon warehouses that supports:\n\n" +
						"1. addStock(warehouseId, productId, quantity)\n" +
						"2. removeStock(warehouseId, productId, quantity)\n" +
						"3. findNearestWarehouse(location, productId, minQuantity)\n" +
						"4. transferStock(fromWarehouse, toWarehouse, productId, quantity)\n\n" +
						"Optimize for query performance at scale.",
					Examples: []models.Example{
						{
							Input:       "Operations: addStock(\"W1\", \"P100\", 50), findNearestWarehouse({lat: 37.7, lng: -122.4}, \"P100\", 10)",
							Output:      "\"W1\" if it's the closest warehouse with at least 10 units of P100",
							Explanation: "System should use spatial indexing for location queries and efficient data structures for stock tracking",
						},
					},
					Constraints: []string{
						"10^6 warehouses globally",
						"10^8 products in catalog",
						"10^9 queries per day",
						"Sub-100ms query response time",
					},
					FollowUp: "How would you handle concurrent stock updates across distributed systems?",
					Hints: []string{
						"Consider using R-trees for spatial indexing",
						"Think about eventual consistency vs strong consistency trade-offs",
					},
				},
			},
		},
		Theoretical: []string{
			"Explain Amazon DynamoDB's partition key design and common anti-patterns to avoid.",
			"How does Amazon's recommendation engine work at scale? Discuss collaborative filtering vs content-based approaches.",
			"What causes AWS Lambda cold starts and how would you optimize a serverless application?",
			"Explain the CAP theorem with real examples from Amazon's services (S3, DynamoDB, etc.).",
			"How would you design Amazon's order fulfillment system to handle Prime's 2-day delivery guarantee?",
		},
		HR: []string{
			"Tell me about a time you had to make a decision based on Amazon's leadership principle 'Customer Obsession'.",
			"Describe a situation where you had to deliver results with limited resources.",
			"Give an example of when you simplified a complex process. What was the impact?",
			"Tell me about a project that failed. What did you learn and how did you apply those lessons?",
		},
	},
	"Meta": {
		DSA: map[models.Difficulty][]models.Question{
			models.DifficultyMedium: {
				{
					Title:      "Friend Suggestions",
					Difficulty: "Medium",
					Description: "You are given a graph representing a social network where nodes are users and edges are friendships. Implement a function to suggest friends for a given user based on:\n\n" +
						"1. Mutual friends (friends of friends)\n" +
						"2. Number of mutual connections\n" +
						"3. Exclude existing friends and the user themselves\n\n" +
						"Return the top K friend suggestions ranked by mutual friend count.",
					Examples: []models.Example{
						{Input: "graph = {1: [2,3], 2: [1,3,4], 3: [1,2,5], 4: [2], 5: [3]}, user = 1, k = 2", Output: "[4, 5]", Explanation: "User 4 has 1 mutual friend (2), User 5 has 1 mutual friend (3). Both are not direct friends of user 1."},
					},
					Constraints: []string{
						"1 <= number of users <= 10^6",
						"1 <= k <= 100",
						"No self-loops or duplicate edges",
					},
					FollowUp: "How would you scale this for Facebook's 3 billion users?",
					Hints: []string{
						"Use BFS to find friends of friends",
						"Consider using a priority queue for top K results",
					},
				},
			},
		},
		Theoretical: []string{
			"Explain how React's virtual DOM and reconciliation algorithm work. What optimizations does React 18 introduce?",
			"How would you design a real-time collaborative editing system like Google Docs?",
			"Walk me through Meta's news feed ranking algorithm. How do you balance engagement vs quality content?",
			"Explain operational transforms vs CRDTs for collaborative editing. Which would you choose and why?",
			"How does WhatsApp achieve end-to-end encryption at scale? Discuss the Signal Protocol.",
		},
		HR: []string{
			"Tell me about a time when you shipped something imperfect to meet a deadline. How did you iterate?",
			"Describe a situation where you influenced a decision without having direct authority.",
			"Give an example of when you had to balance multiple stakeholder requirements.",
			"Tell me about learning from a failed experiment. How did you apply those insights?",
		},
	},
	"Apple": {
		DSA: map[models.Difficulty][]models.Question{
			models.DifficultyMedium: {
				{
					Title:      "Autocorrect System",
					Difficulty: "Medium",
					Description: "Design an autocorrect system for iOS keyboard that:\n\n" +
						"1. Stores a dictionary of valid words\n" +
						"2. For a given misspelled word, suggests corrections based on edit distance\n" +
						"3. Ranks suggestions by frequency of use\n\n" +
						"Implement: addWord(word, frequency), getSuggestions(typo, maxSuggestions)\n\n" +
						"Edit distance is defined as minimum insertions, deletions, or substitutions needed.",
					Examples: []models.Example{
						{Input: "Dictionary: [(\"apple\", 100), (\"apply\", 50)], typo = \"aple\", maxSuggestions = 2", Output: "[\"apple\", \"apply\"]", Explanation: "Both have edit distance 1, but 'apple' ranks higher due to frequency"},
					},
					Constraints: []string{
						"1 <= dictionary size <= 10^5",
						"1 <= word length <= 20",
						"Only lowercase English letters",
						"1 <= frequency <= 10^6",
					},
					FollowUp: "How would you optimize for millions of queries per second?",
					Hints: []string{
						"Use a Trie for prefix matching",
						"Consider BK-trees for edit distance queries",
					},
				},
			},
		},
		Theoretical: []string{
			"Explain iOS's Automatic Reference Counting (ARC) and how it prevents retain cycles.",
			"How does Apple Silicon's unified memory architecture improve performance compared to traditional systems?",
			"Walk me through the iOS keychain security model and the role of Secure Enclave.",
			"Explain Metal graphics API vs OpenGL/Vulkan. Why did Apple create Metal?",
			"How does Apple's differential privacy work in iOS analytics? Discuss local differential privacy.",
		},
		HR: []string{
			"Tell me about a time when you caught a subtle bug that others missed. What was your process?",
			"Describe a situation where you had to balance innovation with practical constraints.",
			"Give an example of when you improved a user experience through attention to detail.",
			"Tell me about taking ownership of a quality issue. How did you ensure it didn't happen again?",
		},
	},
}
