package services

import "github.com/yungbote/mh1-bff/internal/clients/graphql"

const mediaFields = `data { attributes { url } }`

const doctorFields = `
      data {
        attributes {
          name
          experienceYears
          image { ` + mediaFields + ` }
          specialty { data { attributes { name } } }
        }
      }`

const buttonFields = `btnText bgColor textColor`

var mindActivitiesQuery = graphql.Operation{
	Name: "MindActivities",
	Query: `query MindActivities {
  mindActivitiesOverview {
    data {
      attributes {
        heading
        subHeading
        mind_activities {
          data {
            id
            attributes {
              name
              duration
              benefits
              description
              videoUrl
              thumbnail { ` + mediaFields + ` }
            }
          }
        }
      }
    }
  }
}`,
}

var fitnessActivitiesQuery = graphql.Operation{
	Name: "FitnessActivities",
	Query: `query FitnessActivities($weekNumber: Int) {
  fitnessActivities(filters: { week: { lte: $weekNumber } }, pagination: { limit: 100 }) {
    data {
      id
      attributes {
        week
        name
        videoUrl
        subHeading
        thumbnail { ` + mediaFields + ` }
        description { benefits precautions }
        consent_form {
          data {
            attributes {
              weekConfirmation { heading subHeading1 subHeading2 button { ` + buttonFields + ` } }
              docInfo {
                heading
                subHeading
                hms_doctor {` + doctorFields + ` }
                button { ` + buttonFields + ` }
              }
              consentForm { heading subHeading consentText button { ` + buttonFields + ` } }
              disclaimer { heading heading2 subHeading button { ` + buttonFields + ` } }
              unlockActivityCard { heading subHeading button { ` + buttonFields + ` } }
            }
          }
        }
      }
    }
  }
}`,
}

var pregnancyCoachQuery = graphql.Operation{
	Name: "PregnancyCoach",
	Query: `query PregnancyCoach($weekNumber: Int) {
  activities(filters: { week: { eq: $weekNumber } }) {
    data {
      attributes {
        week
        hms_doctor {` + doctorFields + ` }
        activityCardDynamic {
          ... on ComponentActivityCardsActivityCard {
            activityType
            title
            label { text backgroundColor }
            image { ` + mediaFields + ` }
          }
        }
      }
    }
  }
}`,
}

var learnMoreQuery = graphql.Operation{
	Name: "LearnMore",
	Query: `query LearnMore {
  articles(pagination: { limit: 1 }) {
    data {
      attributes {
        info {
          ... on ComponentGenericTitleWithTitleColorList {
            id
            title
            titleColorList { title color }
          }
          ... on ComponentGenericTitleImageColor {
            id
            title
            color
            image { data { attributes { url } } }
          }
        }
        hms_doctor {` + doctorFields + ` }
      }
    }
  }
}`,
}

var dietIntroQuery = graphql.Operation{
	Name: "DietIntro",
	Query: `query DietIntro($trimester: String) {
  dietIntros(filters: { trimester: { eq: $trimester } }) {
    data {
      attributes {
        trimester
        dietIntroStory {
          data {
            attributes {
              firstCard {
                title
                description
                footerText
                cardImage { ` + mediaFields + ` }
                docInfo {` + doctorFields + ` }
              }
              cards {
                title
                description
                bgColor
                footerText
                image { data { attributes { url } } }
              }
            }
          }
        }
        calorieCard { title description footerText bgImage { ` + mediaFields + ` } }
        nutrients { title description footerText image { ` + mediaFields + ` } }
      }
    }
  }
}`,
}

var newsCardsQuery = graphql.Operation{
	Name: "NewsCards",
	Query: `query NewsCards {
  newsCards(sort: "date:desc", pagination: { limit: 50 }) {
    data {
      id
      attributes {
        title
        date
        content
        duration
        externalUrl
        bgImage { ` + mediaFields + ` }
      }
    }
  }
}`,
}
